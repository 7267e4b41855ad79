package entities

import (
	"time"

	"github.com/google/uuid"
)

type HoursEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`

	User    *User    `gorm:"foreignKey:UserID"`
	Project *Project `gorm:"foreignKey:ProjectID"`
	Timestamp
}

type MileageEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Date      time.Time `json:"date"`
	Miles     float64   `json:"miles"`
	Purpose   string    `json:"purpose,omitempty"`

	User    *User    `gorm:"foreignKey:UserID"`
	Project *Project `gorm:"foreignKey:ProjectID"`
	Timestamp
}
