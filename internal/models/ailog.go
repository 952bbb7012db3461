// internal/models/ailog.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// AILog is an append-only record of one hosted-completion call attempt.
// Written once per attempt (success, retry-success, or terminal failure);
// never updated, only removed by the explicit bulk-clear operation.
type AILog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Prompt    string    `json:"prompt" gorm:"type:text;not null"`
	Response  string    `json:"response" gorm:"type:text"`
	ModelUsed string    `json:"model_used" gorm:"size:120;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
