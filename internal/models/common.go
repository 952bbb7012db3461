// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums
type ProductCategory string

const (
	CategoryPhone   ProductCategory = "phone"
	CategoryTablet  ProductCategory = "tablet"
	CategoryLaptop  ProductCategory = "laptop"
	CategoryDesktop ProductCategory = "desktop"
)

// AllCategories lists the known catalog categories. The filter layer does
// not validate against this set; an unknown category simply matches no rows.
var AllCategories = []ProductCategory{
	CategoryPhone,
	CategoryTablet,
	CategoryLaptop,
	CategoryDesktop,
}

type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

type ScreenSizeTier string

const (
	ScreenCompact  ScreenSizeTier = "compact"
	ScreenStandard ScreenSizeTier = "standard"
	ScreenLarge    ScreenSizeTier = "large"
)

type UsageTier string

const (
	UsageBasic    UsageTier = "basic"
	UsageWork     UsageTier = "work"
	UsageGaming   UsageTier = "gaming"
	UsageCreative UsageTier = "creative"
)

type MobilityTier string

const (
	MobilityDesktop       MobilityTier = "desktop"
	MobilityPortable      MobilityTier = "portable"
	MobilityUltraportable MobilityTier = "ultraportable"
)
