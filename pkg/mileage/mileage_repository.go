package mileage

import (
	"context"

	"jobcost-backend/entities"

	"gorm.io/gorm"
)

type (
	MileageRepository interface {
		CreateMileageEntry(ctx context.Context, entry *entities.MileageEntry) error
		GetMileageEntryByID(ctx context.Context, id string) (*entities.MileageEntry, error)
		GetMileageEntries(ctx context.Context, userID string, projectID string) ([]*entities.MileageEntry, error)
		DeleteMileageEntry(ctx context.Context, id string) error
		GetTotalMiles(ctx context.Context, userID string, projectID string) (float64, error)
	}

	mileageRepository struct {
		db *gorm.DB
	}
)

func NewMileageRepository(db *gorm.DB) MileageRepository {
	return &mileageRepository{db: db}
}

func (r *mileageRepository) CreateMileageEntry(ctx context.Context, entry *entities.MileageEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *mileageRepository) GetMileageEntryByID(ctx context.Context, id string) (*entities.MileageEntry, error) {
	var entry entities.MileageEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mileageRepository) GetMileageEntries(ctx context.Context, userID string, projectID string) ([]*entities.MileageEntry, error) {
	var entries []*entities.MileageEntry

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Order("date desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mileageRepository) DeleteMileageEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MileageEntry{}).Error
}

func (r *mileageRepository) GetTotalMiles(ctx context.Context, userID string, projectID string) (float64, error) {
	var total float64

	query := r.db.WithContext(ctx).Model(&entities.MileageEntry{}).Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Select("COALESCE(SUM(miles), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
