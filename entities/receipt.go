package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusPartial    = "partial"
	AnalysisStatusFailed     = "failed"
)

type ReceiptUpload struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	FilePath    string    `json:"file_path"`
	FileName    string    `json:"file_name"`
	Description string    `json:"description,omitempty"`
	UploadDate  time.Time `json:"upload_date"`

	User     *User              `gorm:"foreignKey:UserID"`
	Project  *Project           `gorm:"foreignKey:ProjectID"`
	Analyses []*ReceiptAnalysis `gorm:"foreignKey:ReceiptID"`
}

type ReceiptAnalysis struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID    uuid.UUID `json:"receipt_id"`
	Status       string    `json:"status"` // processing, completed, partial, failed
	AnalysisDate time.Time `json:"analysis_date"`
	RawResponse  string    `json:"raw_response,omitempty" gorm:"type:text"`
	ErrorMessage string    `json:"error_message,omitempty" gorm:"type:text"`

	Receipt *ReceiptUpload `gorm:"foreignKey:ReceiptID"`
	Items   []*ReceiptItem `gorm:"foreignKey:ReceiptAnalysisID"`
}

type ReceiptItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptAnalysisID uuid.UUID `json:"receipt_analysis_id"`
	ReceiptID         uuid.UUID `json:"receipt_id"`
	ItemName          string    `json:"item_name"`
	Quantity          *float64  `json:"quantity"`
	UnitPrice         *float64  `json:"unit_price"`
	TotalPrice        *float64  `json:"total_price"`
	ItemCategory      *string   `json:"item_category"`
	Notes             *string   `json:"notes"`

	ReceiptAnalysis *ReceiptAnalysis `gorm:"foreignKey:ReceiptAnalysisID"`
	Receipt         *ReceiptUpload   `gorm:"foreignKey:ReceiptID"`
}
