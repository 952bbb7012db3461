// internal/models/product.go
package models

import "github.com/lib/pq"

// Product is a catalog entry. The public API treats products as read-only;
// rows are created by the seed or through the admin surface.
type Product struct {
	BaseModel
	Name       string          `json:"name" gorm:"size:255;not null;index"`
	Category   ProductCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	Brand      string          `json:"brand" gorm:"size:100;not null;index"`
	Price      float64         `json:"price" gorm:"type:decimal(10,2);not null"`
	Rating     float64         `json:"rating" gorm:"type:decimal(3,2);default:0"`
	CPU        string          `json:"cpu" gorm:"size:100"`
	RAMGB      int             `json:"ram_gb" gorm:"column:ram_gb"`
	StorageGB  int             `json:"storage_gb" gorm:"column:storage_gb"`
	ScreenInch float64         `json:"screen_inch" gorm:"column:screen_inch;type:decimal(4,1)"`
	WeightKG   float64         `json:"weight_kg" gorm:"column:weight_kg;type:decimal(6,3)"`
	BatteryWh  int             `json:"battery_wh" gorm:"column:battery_wh"`
	ImageURL   string          `json:"image_url" gorm:"size:500"`
	Tags       pq.StringArray  `json:"tags" gorm:"type:text[]"`

	// Relationships
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:ProductID"`
}
