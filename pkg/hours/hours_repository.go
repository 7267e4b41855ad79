package hours

import (
	"context"

	"jobcost-backend/entities"

	"gorm.io/gorm"
)

type (
	HoursRepository interface {
		CreateHoursEntry(ctx context.Context, entry *entities.HoursEntry) error
		GetHoursEntryByID(ctx context.Context, id string) (*entities.HoursEntry, error)
		GetHoursEntries(ctx context.Context, userID string, projectID string) ([]*entities.HoursEntry, error)
		DeleteHoursEntry(ctx context.Context, id string) error
		GetTotalHours(ctx context.Context, userID string, projectID string) (float64, error)
	}

	hoursRepository struct {
		db *gorm.DB
	}
)

func NewHoursRepository(db *gorm.DB) HoursRepository {
	return &hoursRepository{db: db}
}

func (r *hoursRepository) CreateHoursEntry(ctx context.Context, entry *entities.HoursEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *hoursRepository) GetHoursEntryByID(ctx context.Context, id string) (*entities.HoursEntry, error) {
	var entry entities.HoursEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *hoursRepository) GetHoursEntries(ctx context.Context, userID string, projectID string) ([]*entities.HoursEntry, error) {
	var entries []*entities.HoursEntry

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Order("date desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *hoursRepository) DeleteHoursEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.HoursEntry{}).Error
}

func (r *hoursRepository) GetTotalHours(ctx context.Context, userID string, projectID string) (float64, error) {
	var total float64

	query := r.db.WithContext(ctx).Model(&entities.HoursEntry{}).Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Select("COALESCE(SUM(hours), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
