package hours

import (
	"context"
	"errors"
	"time"

	"jobcost-backend/domain"
	"jobcost-backend/entities"
	"jobcost-backend/pkg/project"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HoursService interface {
		CreateHoursEntry(ctx context.Context, req domain.CreateHoursEntryRequest, userID string) (domain.HoursEntryResponse, error)
		GetHoursEntries(ctx context.Context, userID string, projectID string) (domain.HoursSummaryResponse, error)
		DeleteHoursEntry(ctx context.Context, id string, userID string) error
	}

	hoursService struct {
		hoursRepository   HoursRepository
		projectRepository project.ProjectRepository
	}
)

func NewHoursService(hoursRepository HoursRepository, projectRepository project.ProjectRepository) HoursService {
	return &hoursService{
		hoursRepository:   hoursRepository,
		projectRepository: projectRepository,
	}
}

func (s *hoursService) CreateHoursEntry(ctx context.Context, req domain.CreateHoursEntryRequest, userID string) (domain.HoursEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.HoursEntryResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.HoursEntryResponse{}, domain.ErrInvalidEntryDate
	}

	if req.Hours <= 0 {
		return domain.HoursEntryResponse{}, domain.ErrInvalidHours
	}

	proj, err := s.projectRepository.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HoursEntryResponse{}, domain.ErrProjectNotFound
		}
		return domain.HoursEntryResponse{}, err
	}
	if proj.UserID.String() != userID {
		return domain.HoursEntryResponse{}, domain.ErrUnauthorizedProjectAccess
	}

	entry := &entities.HoursEntry{
		ID:          uuid.New(),
		UserID:      userUUID,
		ProjectID:   proj.ID,
		Date:        date,
		Hours:       req.Hours,
		Description: req.Description,
	}

	if err := s.hoursRepository.CreateHoursEntry(ctx, entry); err != nil {
		return domain.HoursEntryResponse{}, err
	}

	return toHoursEntryResponse(entry), nil
}

func (s *hoursService) GetHoursEntries(ctx context.Context, userID string, projectID string) (domain.HoursSummaryResponse, error) {
	entries, err := s.hoursRepository.GetHoursEntries(ctx, userID, projectID)
	if err != nil {
		return domain.HoursSummaryResponse{}, err
	}

	total, err := s.hoursRepository.GetTotalHours(ctx, userID, projectID)
	if err != nil {
		return domain.HoursSummaryResponse{}, err
	}

	response := domain.HoursSummaryResponse{
		Entries:    make([]domain.HoursEntryResponse, 0, len(entries)),
		TotalHours: total,
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toHoursEntryResponse(entry))
	}
	return response, nil
}

func (s *hoursService) DeleteHoursEntry(ctx context.Context, id string, userID string) error {
	entry, err := s.hoursRepository.GetHoursEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrHoursEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUnauthorizedEntryAccess
	}

	return s.hoursRepository.DeleteHoursEntry(ctx, id)
}

func toHoursEntryResponse(entry *entities.HoursEntry) domain.HoursEntryResponse {
	return domain.HoursEntryResponse{
		ID:          entry.ID.String(),
		ProjectID:   entry.ProjectID.String(),
		Date:        entry.Date,
		Hours:       entry.Hours,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}
