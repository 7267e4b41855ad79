package entities

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Client      string    `json:"client,omitempty"`
	Status      string    `json:"status"` // "Pending", "Active", "Completed", "On Hold"
	Description string    `json:"description,omitempty" gorm:"type:text"`
	StartDate   time.Time `json:"start_date"`

	User           *User            `gorm:"foreignKey:UserID"`
	Expenses       []*Expense       `gorm:"foreignKey:ProjectID"`
	HoursEntries   []*HoursEntry    `gorm:"foreignKey:ProjectID"`
	MileageEntries []*MileageEntry  `gorm:"foreignKey:ProjectID"`
	Receipts       []*ReceiptUpload `gorm:"foreignKey:ProjectID"`
	Timestamp
}
