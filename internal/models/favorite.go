// internal/models/favorite.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product as favorited by a user. Existence of the row is
// the whole state: toggling on creates it, toggling off hard-deletes it.
// The composite unique index keeps at most one row per (user, product) pair.
type Favorite struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
