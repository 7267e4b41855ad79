package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateHoursEntry   = "hours entry created successfully"
	MessageSuccessGetHoursEntries    = "hours entries retrieved successfully"
	MessageSuccessDeleteHoursEntry   = "hours entry deleted successfully"
	MessageSuccessCreateMileageEntry = "mileage entry created successfully"
	MessageSuccessGetMileageEntries  = "mileage entries retrieved successfully"
	MessageSuccessDeleteMileageEntry = "mileage entry deleted successfully"

	MessageFailedCreateHoursEntry   = "failed to create hours entry"
	MessageFailedGetHoursEntries    = "failed to retrieve hours entries"
	MessageFailedDeleteHoursEntry   = "failed to delete hours entry"
	MessageFailedCreateMileageEntry = "failed to create mileage entry"
	MessageFailedGetMileageEntries  = "failed to retrieve mileage entries"
	MessageFailedDeleteMileageEntry = "failed to delete mileage entry"

	ErrHoursEntryNotFound      = errors.New("hours entry not found")
	ErrMileageEntryNotFound    = errors.New("mileage entry not found")
	ErrInvalidHours            = errors.New("hours must be positive")
	ErrInvalidMiles            = errors.New("miles must be positive")
	ErrInvalidEntryDate        = errors.New("invalid entry date")
	ErrUnauthorizedEntryAccess = errors.New("unauthorized access to entry")
)

type (
	CreateHoursEntryRequest struct {
		ProjectID   string  `json:"project_id" validate:"required,uuid"`
		Date        string  `json:"date" validate:"required"`
		Hours       float64 `json:"hours" validate:"required,gt=0"`
		Description string  `json:"description" validate:"omitempty"`
	}

	HoursEntryResponse struct {
		ID          string    `json:"id"`
		ProjectID   string    `json:"project_id"`
		Date        time.Time `json:"date"`
		Hours       float64   `json:"hours"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	HoursSummaryResponse struct {
		Entries    []HoursEntryResponse `json:"entries"`
		TotalHours float64              `json:"total_hours"`
	}

	CreateMileageEntryRequest struct {
		ProjectID string  `json:"project_id" validate:"required,uuid"`
		Date      string  `json:"date" validate:"required"`
		Miles     float64 `json:"miles" validate:"required,gt=0"`
		Purpose   string  `json:"purpose" validate:"omitempty"`
	}

	MileageEntryResponse struct {
		ID        string    `json:"id"`
		ProjectID string    `json:"project_id"`
		Date      time.Time `json:"date"`
		Miles     float64   `json:"miles"`
		Purpose   string    `json:"purpose,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	MileageSummaryResponse struct {
		Entries    []MileageEntryResponse `json:"entries"`
		TotalMiles float64                `json:"total_miles"`
	}
)
