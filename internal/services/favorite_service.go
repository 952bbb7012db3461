// internal/services/favorite_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/database"
	"github.com/alihanerman/ai-product-explorer/internal/models"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

type ToggleFavoriteRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

// Toggle flips the favorite state for (user, product) and reports the new
// state. Toggling twice restores the original state.
func (s *FavoriteService) Toggle(userID, productID string) (favorited bool, err error) {
	var product models.Product
	if err := s.db.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return false, err
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var existing models.Favorite
		err := tx.Where("user_id = ? AND product_id = ?", uid, pid).First(&existing).Error
		if err == nil {
			favorited = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favorited = true
		return tx.Create(&models.Favorite{UserID: uid, ProductID: pid}).Error
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// ListProductIDs returns the ids of every product the user has favorited,
// newest first.
func (s *FavoriteService) ListProductIDs(userID string) ([]string, error) {
	var ids []string
	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Pluck("product_id", &ids).Error
	return ids, err
}

// ListProducts returns the full product records the user has favorited.
func (s *FavoriteService) ListProducts(userID string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&products).Error
	return products, err
}
