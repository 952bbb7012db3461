// internal/services/favorite_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alihanerman/ai-product-explorer/internal/models"
)

// The uuid defaults and text[] column type on the models are postgres
// specific, so the test schema is declared by hand.
func newFavoriteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			created_at DATETIME, updated_at DATETIME, deleted_at DATETIME,
			name TEXT, category TEXT, brand TEXT,
			price REAL, rating REAL, cpu TEXT,
			ram_gb INTEGER, storage_gb INTEGER, screen_inch REAL,
			weight_kg REAL, battery_wh INTEGER, image_url TEXT, tags TEXT)`,
		`CREATE TABLE favorites (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			user_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			created_at DATETIME)`,
		`CREATE UNIQUE INDEX idx_favorites_user_product ON favorites(user_id, product_id)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func favoriteTestProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()

	p := models.Product{
		Name:     name,
		Category: models.CategoryLaptop,
		Brand:    "Dell",
		Price:    999,
	}
	p.ID = uuid.New()
	require.NoError(t, db.Create(&p).Error)
	return p
}

func favoriteCount(t *testing.T, db *gorm.DB, userID, productID string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&n).Error)
	return n
}

func TestToggleFavoriteDoubleInvocationRestoresState(t *testing.T) {
	db := newFavoriteTestDB(t)
	service := NewFavoriteService(db)

	product := favoriteTestProduct(t, db, "XPS 13")
	userID := uuid.New().String()
	productID := product.ID.String()

	favorited, err := service.Toggle(userID, productID)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.Equal(t, int64(1), favoriteCount(t, db, userID, productID))

	favorited, err = service.Toggle(userID, productID)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.Equal(t, int64(0), favoriteCount(t, db, userID, productID))

	favorited, err = service.Toggle(userID, productID)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.Equal(t, int64(1), favoriteCount(t, db, userID, productID))
}

func TestToggleFavoriteUnknownProduct(t *testing.T) {
	db := newFavoriteTestDB(t)
	service := NewFavoriteService(db)

	_, err := service.Toggle(uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFavoriteUniquePerUserProduct(t *testing.T) {
	db := newFavoriteTestDB(t)
	service := NewFavoriteService(db)

	product := favoriteTestProduct(t, db, "XPS 13")
	userID := uuid.New()

	favorited, err := service.Toggle(userID.String(), product.ID.String())
	require.NoError(t, err)
	require.True(t, favorited)

	err = db.Create(&models.Favorite{UserID: userID, ProductID: product.ID}).Error
	assert.Error(t, err)
	assert.Equal(t, int64(1), favoriteCount(t, db, userID.String(), product.ID.String()))
}

func TestFavoriteListProductIDs(t *testing.T) {
	db := newFavoriteTestDB(t)
	service := NewFavoriteService(db)

	first := favoriteTestProduct(t, db, "XPS 13")
	second := favoriteTestProduct(t, db, "MacBook Air")
	userID := uuid.New().String()

	_, err := service.Toggle(userID, first.ID.String())
	require.NoError(t, err)
	_, err = service.Toggle(userID, second.ID.String())
	require.NoError(t, err)

	ids, err := service.ListProductIDs(userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID.String(), second.ID.String()}, ids)

	_, err = service.Toggle(userID, first.ID.String())
	require.NoError(t, err)

	ids, err = service.ListProductIDs(userID)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID.String()}, ids)
}
