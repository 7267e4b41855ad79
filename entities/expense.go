package entities

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Vendor     string    `json:"vendor,omitempty"`
	Category   string    `json:"category,omitempty"`
	ReceiptURL string    `json:"receipt_url,omitempty"`

	User    *User    `gorm:"foreignKey:UserID"`
	Project *Project `gorm:"foreignKey:ProjectID"`
	Timestamp
}
