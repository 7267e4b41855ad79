package mileage

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
	MileageService interface {
		CreateMileageEntry(ctx context.Context, req domain.CreateMileageEntryRequest, userID string) (domain.MileageEntryResponse, error)
		GetMileageEntries(ctx context.Context, userID string, projectID string) (domain.MileageSummaryResponse, error)
		DeleteMileageEntry(ctx context.Context, id string, userID string) error
	}

	mileageService struct {
		mileageRepository MileageRepository
		projectRepository project.ProjectRepository
	}
)

func NewMileageService(mileageRepository MileageRepository, projectRepository project.ProjectRepository) MileageService {
	return &mileageService{
		mileageRepository: mileageRepository,
		projectRepository: projectRepository,
	}
}

func (s *mileageService) CreateMileageEntry(ctx context.Context, req domain.CreateMileageEntryRequest, userID string) (domain.MileageEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MileageEntryResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.MileageEntryResponse{}, domain.ErrInvalidEntryDate
	}

	if req.Miles <= 0 {
		return domain.MileageEntryResponse{}, domain.ErrInvalidMiles
	}

	proj, err := s.projectRepository.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MileageEntryResponse{}, domain.ErrProjectNotFound
		}
		return domain.MileageEntryResponse{}, err
	}
	if proj.UserID.String() != userID {
		return domain.MileageEntryResponse{}, domain.ErrUnauthorizedProjectAccess
	}

	entry := &entities.MileageEntry{
		ID:        uuid.New(),
		UserID:    userUUID,
		ProjectID: proj.ID,
		Date:      date,
		Miles:     req.Miles,
		Purpose:   req.Purpose,
	}

	if err := s.mileageRepository.CreateMileageEntry(ctx, entry); err != nil {
		return domain.MileageEntryResponse{}, err
	}

	return toMileageEntryResponse(entry), nil
}

func (s *mileageService) GetMileageEntries(ctx context.Context, userID string, projectID string) (domain.MileageSummaryResponse, error) {
	entries, err := s.mileageRepository.GetMileageEntries(ctx, userID, projectID)
	if err != nil {
		return domain.MileageSummaryResponse{}, err
	}

	total, err := s.mileageRepository.GetTotalMiles(ctx, userID, projectID)
	if err != nil {
		return domain.MileageSummaryResponse{}, err
	}

	response := domain.MileageSummaryResponse{
		Entries:    make([]domain.MileageEntryResponse, 0, len(entries)),
		TotalMiles: total,
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toMileageEntryResponse(entry))
	}
	return response, nil
}

func (s *mileageService) DeleteMileageEntry(ctx context.Context, id string, userID string) error {
	entry, err := s.mileageRepository.GetMileageEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMileageEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUnauthorizedEntryAccess
	}

	return s.mileageRepository.DeleteMileageEntry(ctx, id)
}

func toMileageEntryResponse(entry *entities.MileageEntry) domain.MileageEntryResponse {
	return domain.MileageEntryResponse{
		ID:        entry.ID.String(),
		ProjectID: entry.ProjectID.String(),
		Date:      entry.Date,
		Miles:     entry.Miles,
		Purpose:   entry.Purpose,
		CreatedAt: entry.CreatedAt,
	}
}
