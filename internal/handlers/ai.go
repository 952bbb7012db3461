// internal/handlers/ai.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/alihanerman/ai-product-explorer/internal/services"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

type AIHandler struct {
	aiService      *services.AIService
	compareService *services.CompareService
	productService *services.ProductService
}

func NewAIHandler(aiService *services.AIService, compareService *services.CompareService, productService *services.ProductService) *AIHandler {
	return &AIHandler{
		aiService:      aiService,
		compareService: compareService,
		productService: productService,
	}
}

// POST /ai/parse-query
func (h *AIHandler) ParseQuery(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required,min=1,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "query is required", nil)
		return
	}

	// The call budget is tracked per user when authenticated, per IP
	// otherwise.
	identity, ok := utils.GetUserIDFromContext(c)
	if !ok {
		identity = c.ClientIP()
	}

	result := h.aiService.ParseQuery(c.Request.Context(), identity, req.Query)
	utils.SuccessResponse(c, result)
}

// POST /ai/compare
func (h *AIHandler) Compare(c *gin.Context) {
	var req services.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "productIds must list 2 to 4 product ids", nil)
		return
	}

	result, err := h.compareService.Compare(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotEnoughProducts) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		if verrs := utils.GetValidationErrors(err); len(verrs) > 0 {
			utils.ValidationErrorResponse(c, verrs)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, result)
}

// POST /ai/score
func (h *AIHandler) Score(c *gin.Context) {
	var req struct {
		ProductIDs []string `json:"productIds" binding:"required,min=2,max=4"`
		Attributes []string `json:"attributes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "productIds must list 2 to 4 product ids", nil)
		return
	}

	products, err := h.productService.GetByIDs(req.ProductIDs)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	if len(products) < 2 {
		utils.BadRequestResponse(c, "at least two known products are required", nil)
		return
	}

	result, err := services.ScoreProducts(products, req.Attributes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.SuccessResponse(c, result)
}
