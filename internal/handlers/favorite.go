// internal/handlers/favorite.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/alihanerman/ai-product-explorer/internal/services"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// POST /favorites
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "productId is required", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	favorited, err := h.favoriteService.Toggle(userID, req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, gin.H{"productId": req.ProductID, "favorited": favorited})
}

// GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if c.Query("full") == "true" {
		products, err := h.favoriteService.ListProducts(userID)
		if err != nil {
			utils.InternalErrorResponse(c, "")
			return
		}
		utils.SuccessResponse(c, gin.H{"products": products})
		return
	}

	ids, err := h.favoriteService.ListProductIDs(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, gin.H{"productIds": ids})
}
