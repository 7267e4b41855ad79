package project

import (
	"context"

	"jobcost-backend/entities"

	"gorm.io/gorm"
)

type (
	ProjectRepository interface {
		CreateProject(ctx context.Context, project *entities.Project) error
		GetProjectByID(ctx context.Context, id string) (*entities.Project, error)
		GetProjects(ctx context.Context, userID string) ([]*entities.Project, error)
		UpdateProject(ctx context.Context, project *entities.Project) error
		DeleteProject(ctx context.Context, id string) error
		GetProjectTotals(ctx context.Context, projectID string) (expenses float64, hours float64, miles float64, err error)
	}

	projectRepository struct {
		db *gorm.DB
	}
)

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) CreateProject(ctx context.Context, project *entities.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	var project entities.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) GetProjects(ctx context.Context, userID string) ([]*entities.Project, error) {
	var projects []*entities.Project
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project *entities.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Project{}).Error
}

func (r *projectRepository) GetProjectTotals(ctx context.Context, projectID string) (float64, float64, float64, error) {
	var expenses, hours, miles float64

	if err := r.db.WithContext(ctx).Model(&entities.Expense{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").Scan(&expenses).Error; err != nil {
		return 0, 0, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.HoursEntry{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(hours), 0)").Scan(&hours).Error; err != nil {
		return 0, 0, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.MileageEntry{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(miles), 0)").Scan(&miles).Error; err != nil {
		return 0, 0, 0, err
	}

	return expenses, hours, miles, nil
}
