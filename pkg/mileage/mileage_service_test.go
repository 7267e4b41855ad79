package mileage

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobcost-backend/domain"
	"jobcost-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMileageRepository struct {
	entries map[string]*entities.MileageEntry
}

func newFakeMileageRepository() *fakeMileageRepository {
	return &fakeMileageRepository{entries: make(map[string]*entities.MileageEntry)}
}

func (r *fakeMileageRepository) CreateMileageEntry(_ context.Context, entry *entities.MileageEntry) error {
	r.entries[entry.ID.String()] = entry
	return nil
}

func (r *fakeMileageRepository) GetMileageEntryByID(_ context.Context, id string) (*entities.MileageEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (r *fakeMileageRepository) GetMileageEntries(_ context.Context, userID string, projectID string) ([]*entities.MileageEntry, error) {
	var entries []*entities.MileageEntry
	for _, entry := range r.entries {
		if entry.UserID.String() != userID {
			continue
		}
		if projectID != "" && entry.ProjectID.String() != projectID {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *fakeMileageRepository) DeleteMileageEntry(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeMileageRepository) GetTotalMiles(_ context.Context, userID string, projectID string) (float64, error) {
	var total float64
	for _, entry := range r.entries {
		if entry.UserID.String() != userID {
			continue
		}
		if projectID != "" && entry.ProjectID.String() != projectID {
			continue
		}
		total += entry.Miles
	}
	return total, nil
}

type fakeProjectRepository struct {
	projects map[string]*entities.Project
}

func newFakeProjectRepository() *fakeProjectRepository {
	return &fakeProjectRepository{projects: make(map[string]*entities.Project)}
}

func (r *fakeProjectRepository) CreateProject(_ context.Context, project *entities.Project) error {
	r.projects[project.ID.String()] = project
	return nil
}

func (r *fakeProjectRepository) GetProjectByID(_ context.Context, id string) (*entities.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

func (r *fakeProjectRepository) GetProjects(_ context.Context, _ string) ([]*entities.Project, error) {
	return nil, nil
}

func (r *fakeProjectRepository) UpdateProject(_ context.Context, project *entities.Project) error {
	r.projects[project.ID.String()] = project
	return nil
}

func (r *fakeProjectRepository) DeleteProject(_ context.Context, id string) error {
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepository) GetProjectTotals(_ context.Context, _ string) (float64, float64, float64, error) {
	return 0, 0, 0, nil
}

type mileageFixture struct {
	service     MileageService
	mileageRepo *fakeMileageRepository

	userID  uuid.UUID
	project *entities.Project
}

func newMileageFixture(t *testing.T) *mileageFixture {
	t.Helper()

	mileageRepo := newFakeMileageRepository()
	projectRepo := newFakeProjectRepository()

	userID := uuid.New()
	project := &entities.Project{ID: uuid.New(), UserID: userID, Name: "Kitchen Remodel"}
	require.NoError(t, projectRepo.CreateProject(context.Background(), project))

	return &mileageFixture{
		service:     NewMileageService(mileageRepo, projectRepo),
		mileageRepo: mileageRepo,
		userID:      userID,
		project:     project,
	}
}

func TestCreateMileageEntry(t *testing.T) {
	ctx := context.Background()

	newRequest := func(projectID string) domain.CreateMileageEntryRequest {
		return domain.CreateMileageEntryRequest{
			ProjectID: projectID,
			Date:      "2025-02-10",
			Miles:     24.5,
			Purpose:   "supply run",
		}
	}

	t.Run("unknown project", func(t *testing.T) {
		f := newMileageFixture(t)

		_, err := f.service.CreateMileageEntry(ctx, newRequest(uuid.NewString()), f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProjectNotFound))
		assert.Empty(t, f.mileageRepo.entries)
	})

	t.Run("project of another user", func(t *testing.T) {
		f := newMileageFixture(t)
		other := &entities.Project{ID: uuid.New(), UserID: uuid.New(), Name: "Not Yours"}
		projectRepo := &fakeProjectRepository{projects: map[string]*entities.Project{other.ID.String(): other}}
		service := NewMileageService(f.mileageRepo, projectRepo)

		_, err := service.CreateMileageEntry(ctx, newRequest(other.ID.String()), f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorizedProjectAccess))
		assert.Empty(t, f.mileageRepo.entries)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newMileageFixture(t)
		req := newRequest(f.project.ID.String())
		req.Date = "02/10/2025"

		_, err := f.service.CreateMileageEntry(ctx, req, f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidEntryDate))
	})

	t.Run("nonpositive miles", func(t *testing.T) {
		f := newMileageFixture(t)
		req := newRequest(f.project.ID.String())
		req.Miles = 0

		_, err := f.service.CreateMileageEntry(ctx, req, f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidMiles))
	})

	t.Run("successful create", func(t *testing.T) {
		f := newMileageFixture(t)

		res, err := f.service.CreateMileageEntry(ctx, newRequest(f.project.ID.String()), f.userID.String())
		require.NoError(t, err)
		assert.Equal(t, 24.5, res.Miles)
		assert.Equal(t, "supply run", res.Purpose)
		assert.Len(t, f.mileageRepo.entries, 1)
	})
}

func TestGetMileageEntries(t *testing.T) {
	ctx := context.Background()

	f := newMileageFixture(t)
	for _, miles := range []float64{24.5, 10.0} {
		_, err := f.service.CreateMileageEntry(ctx, domain.CreateMileageEntryRequest{
			ProjectID: f.project.ID.String(),
			Date:      "2025-02-10",
			Miles:     miles,
		}, f.userID.String())
		require.NoError(t, err)
	}

	res, err := f.service.GetMileageEntries(ctx, f.userID.String(), f.project.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, 34.5, res.TotalMiles)

	res, err = f.service.GetMileageEntries(ctx, f.userID.String(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Zero(t, res.TotalMiles)
}

func TestDeleteMileageEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown entry", func(t *testing.T) {
		f := newMileageFixture(t)

		err := f.service.DeleteMileageEntry(ctx, uuid.NewString(), f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMileageEntryNotFound))
	})

	t.Run("entry of another user", func(t *testing.T) {
		f := newMileageFixture(t)
		entry := &entities.MileageEntry{ID: uuid.New(), UserID: f.userID, ProjectID: f.project.ID, Miles: 12, Date: time.Now()}
		require.NoError(t, f.mileageRepo.CreateMileageEntry(ctx, entry))

		err := f.service.DeleteMileageEntry(ctx, entry.ID.String(), uuid.NewString())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorizedEntryAccess))
		assert.Len(t, f.mileageRepo.entries, 1)
	})

	t.Run("successful delete", func(t *testing.T) {
		f := newMileageFixture(t)
		entry := &entities.MileageEntry{ID: uuid.New(), UserID: f.userID, ProjectID: f.project.ID, Miles: 12, Date: time.Now()}
		require.NoError(t, f.mileageRepo.CreateMileageEntry(ctx, entry))

		require.NoError(t, f.service.DeleteMileageEntry(ctx, entry.ID.String(), f.userID.String()))
		assert.Empty(t, f.mileageRepo.entries)
	})
}
