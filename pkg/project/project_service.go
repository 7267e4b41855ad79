package project

import (
	"context"
	"errors"
	"time"

	"jobcost-backend/domain"
	"jobcost-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProjectService interface {
		CreateProject(ctx context.Context, req domain.CreateProjectRequest, userID string) (domain.ProjectResponse, error)
		GetProjects(ctx context.Context, userID string) ([]domain.ProjectResponse, error)
		GetProjectByID(ctx context.Context, id string, userID string) (domain.ProjectDetailResponse, error)
		UpdateProject(ctx context.Context, id string, req domain.UpdateProjectRequest, userID string) error
		DeleteProject(ctx context.Context, id string, userID string) error
	}

	projectService struct {
		projectRepository ProjectRepository
	}
)

func NewProjectService(projectRepository ProjectRepository) ProjectService {
	return &projectService{projectRepository: projectRepository}
}

func (s *projectService) CreateProject(ctx context.Context, req domain.CreateProjectRequest, userID string) (domain.ProjectResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProjectResponse{}, domain.ErrParseUUID
	}

	status := req.Status
	if status == "" {
		status = "Pending"
	}

	startDate := time.Now()
	if req.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return domain.ProjectResponse{}, domain.ErrInvalidStartDate
		}
	}

	project := &entities.Project{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Client:      req.Client,
		Status:      status,
		Description: req.Description,
		StartDate:   startDate,
	}

	if err := s.projectRepository.CreateProject(ctx, project); err != nil {
		return domain.ProjectResponse{}, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) GetProjects(ctx context.Context, userID string) ([]domain.ProjectResponse, error) {
	projects, err := s.projectRepository.GetProjects(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}
	return response, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id string, userID string) (domain.ProjectDetailResponse, error) {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProjectDetailResponse{}, domain.ErrProjectNotFound
		}
		return domain.ProjectDetailResponse{}, err
	}

	if project.UserID.String() != userID {
		return domain.ProjectDetailResponse{}, domain.ErrUnauthorizedProjectAccess
	}

	expenses, hours, miles, err := s.projectRepository.GetProjectTotals(ctx, id)
	if err != nil {
		return domain.ProjectDetailResponse{}, err
	}

	return domain.ProjectDetailResponse{
		ProjectResponse: toProjectResponse(project),
		TotalExpenses:   expenses,
		TotalHours:      hours,
		TotalMiles:      miles,
	}, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req domain.UpdateProjectRequest, userID string) error {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProjectNotFound
		}
		return err
	}

	if project.UserID.String() != userID {
		return domain.ErrUnauthorizedProjectAccess
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Client != "" {
		project.Client = req.Client
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.Status != "" {
		project.Status = req.Status
	}
	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return domain.ErrInvalidStartDate
		}
		project.StartDate = startDate
	}

	return s.projectRepository.UpdateProject(ctx, project)
}

func (s *projectService) DeleteProject(ctx context.Context, id string, userID string) error {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProjectNotFound
		}
		return err
	}

	if project.UserID.String() != userID {
		return domain.ErrUnauthorizedProjectAccess
	}

	return s.projectRepository.DeleteProject(ctx, id)
}

func toProjectResponse(project *entities.Project) domain.ProjectResponse {
	return domain.ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Client:      project.Client,
		Status:      project.Status,
		Description: project.Description,
		StartDate:   project.StartDate,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
