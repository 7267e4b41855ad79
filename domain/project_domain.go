package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProject = "project created successfully"
	MessageSuccessGetProjects   = "projects retrieved successfully"
	MessageSuccessGetProject    = "project retrieved successfully"
	MessageSuccessUpdateProject = "project updated successfully"
	MessageSuccessDeleteProject = "project deleted successfully"

	MessageFailedCreateProject = "failed to create project"
	MessageFailedGetProjects   = "failed to retrieve projects"
	MessageFailedGetProject    = "failed to retrieve project"
	MessageFailedUpdateProject = "failed to update project"
	MessageFailedDeleteProject = "failed to delete project"

	ErrProjectNotFound           = errors.New("project not found")
	ErrUnauthorizedProjectAccess = errors.New("unauthorized access to project")
	ErrInvalidProjectStatus      = errors.New("invalid project status")
	ErrInvalidStartDate          = errors.New("invalid start date")
)

type (
	CreateProjectRequest struct {
		Name        string `json:"name" validate:"required"`
		Client      string `json:"client" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Status      string `json:"status" validate:"omitempty,oneof=Pending Active Completed 'On Hold'"`
		StartDate   string `json:"start_date" validate:"omitempty"`
	}

	UpdateProjectRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Client      string `json:"client" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Status      string `json:"status" validate:"omitempty,oneof=Pending Active Completed 'On Hold'"`
		StartDate   string `json:"start_date" validate:"omitempty"`
	}

	ProjectResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Client      string    `json:"client,omitempty"`
		Status      string    `json:"status"`
		Description string    `json:"description,omitempty"`
		StartDate   time.Time `json:"start_date"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	ProjectDetailResponse struct {
		ProjectResponse
		TotalExpenses float64 `json:"total_expenses"`
		TotalHours    float64 `json:"total_hours"`
		TotalMiles    float64 `json:"total_miles"`
	}
)
