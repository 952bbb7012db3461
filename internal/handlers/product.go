// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alihanerman/ai-product-explorer/internal/services"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

type ProductHandler struct {
	productService    *services.ProductService
	suggestionService *services.SuggestionService
	storageService    *services.StorageService
}

func NewProductHandler(productService *services.ProductService, suggestionService *services.SuggestionService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService:    productService,
		suggestionService: suggestionService,
		storageService:    storageService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters, err := services.NormalizeProductFilters(c.Request.URL.Query())
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.BadRequestResponse(c, verr.Message, gin.H{"field": verr.Field})
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	products, total, err := h.productService.List(filters)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	params := utils.PaginationParams{Page: filters.Page, Limit: filters.Limit}
	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /products/batch
func (h *ProductHandler) GetProductsBatch(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required,min=1,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "ids must be a list of 1 to 50 product ids", nil)
		return
	}

	products, err := h.productService.GetByIDs(req.IDs)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /products/brands
func (h *ProductHandler) GetBrands(c *gin.Context) {
	brands, err := h.productService.ListBrands()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, brands)
}

// GET /search/suggestions
func (h *ProductHandler) GetSuggestions(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	suggestions, err := h.suggestionService.Suggest(c.Query("q"), limit)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, gin.H{"suggestions": suggestions})
}

// POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		if verrs := utils.GetValidationErrors(err); len(verrs) > 0 {
			utils.ValidationErrorResponse(c, verrs)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.CreatedResponse(c, product)
}

// PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	product, err := h.productService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if verrs := utils.GetValidationErrors(err); len(verrs) > 0 {
			utils.ValidationErrorResponse(c, verrs)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, product)
}

// DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// POST /admin/products/:id/image
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "image file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, services.ProductImageOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	product, err := h.productService.SetImageURL(c.Param("id"), result.URL)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product, "upload": result})
}
