// internal/services/product_service.go
package services

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/models"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=255"`
	Category   string  `json:"category" validate:"required,product_category"`
	Brand      string  `json:"brand" validate:"required,min=1,max=120"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	CPU        string  `json:"cpu" validate:"required"`
	RAMGB      int     `json:"ram_gb" validate:"gte=0"`
	StorageGB  int     `json:"storage_gb" validate:"gte=0"`
	ScreenInch float64 `json:"screen_inch" validate:"gte=0"`
	WeightKG   float64 `json:"weight_kg" validate:"gte=0"`
	BatteryWh  int      `json:"battery_wh" validate:"gte=0"`
	ImageURL   string   `json:"image_url" validate:"omitempty,url"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type UpdateProductRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Category   *string  `json:"category" validate:"omitempty,product_category"`
	Brand      *string  `json:"brand" validate:"omitempty,min=1,max=120"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
	Rating     *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	CPU        *string  `json:"cpu"`
	RAMGB      *int     `json:"ram_gb" validate:"omitempty,gte=0"`
	StorageGB  *int     `json:"storage_gb" validate:"omitempty,gte=0"`
	ScreenInch *float64 `json:"screen_inch" validate:"omitempty,gte=0"`
	WeightKG   *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	BatteryWh  *int      `json:"battery_wh" validate:"omitempty,gte=0"`
	ImageURL   *string   `json:"image_url" validate:"omitempty,url"`
	Tags       *[]string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// List returns the catalog page matching filters plus the total row count
// before pagination.
func (s *ProductService) List(filters ProductFilters) ([]models.Product, int64, error) {
	query := s.applyFilters(s.db.Model(&models.Product{}), filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := utils.PaginationParams{
		Page:  filters.Page,
		Limit: filters.Limit,
		Sort:  filters.SortBy,
		Order: filters.SortDirection,
	}

	var products []models.Product
	err := utils.ApplyPagination(
		utils.ApplySort(query, params, []string{"price", "rating", "ram_gb", "storage_gb", "name"}),
		params,
	).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *ProductService) applyFilters(query *gorm.DB, filters ProductFilters) *gorm.DB {
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if len(filters.Brands) > 0 {
		query = query.Where("brand IN ?", filters.Brands)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinRAMGB != nil {
		query = query.Where("ram_gb >= ?", *filters.MinRAMGB)
	}
	if filters.MinStorageGB != nil {
		query = query.Where("storage_gb >= ?", *filters.MinStorageGB)
	}
	if filters.Search != "" {
		term := "%" + strings.TrimSpace(filters.Search) + "%"
		query = query.Where(
			"name ILIKE ? OR brand ILIKE ? OR category ILIKE ? OR cpu ILIKE ?",
			term, term, term, term,
		)
	}
	return query
}

func (s *ProductService) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetByIDs returns the products matching ids. Unknown ids are silently
// dropped; callers that care about completeness compare lengths.
func (s *ProductService) GetByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := s.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) ListBrands() ([]string, error) {
	var brands []string
	err := s.db.Model(&models.Product{}).
		Distinct("brand").
		Order("brand asc").
		Pluck("brand", &brands).Error
	return brands, err
}

func (s *ProductService) Create(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:       req.Name,
		Category:   models.ProductCategory(req.Category),
		Brand:      req.Brand,
		Price:      req.Price,
		Rating:     req.Rating,
		CPU:        req.CPU,
		RAMGB:      req.RAMGB,
		StorageGB:  req.StorageGB,
		ScreenInch: req.ScreenInch,
		WeightKG:   req.WeightKG,
		BatteryWh:  req.BatteryWh,
		ImageURL:   req.ImageURL,
		Tags:       pq.StringArray(req.Tags),
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(id string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.CPU != nil {
		updates["cpu"] = *req.CPU
	}
	if req.RAMGB != nil {
		updates["ram_gb"] = *req.RAMGB
	}
	if req.StorageGB != nil {
		updates["storage_gb"] = *req.StorageGB
	}
	if req.ScreenInch != nil {
		updates["screen_inch"] = *req.ScreenInch
	}
	if req.WeightKG != nil {
		updates["weight_kg"] = *req.WeightKG
	}
	if req.BatteryWh != nil {
		updates["battery_wh"] = *req.BatteryWh
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(*req.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return product, nil
}

func (s *ProductService) Delete(id string) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductService) SetImageURL(id, imageURL string) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(product).Update("image_url", imageURL).Error; err != nil {
		return nil, err
	}
	return product, nil
}
