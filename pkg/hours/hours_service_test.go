package hours

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

type fakeHoursRepository struct {
	entries map[string]*entities.HoursEntry
}

func newFakeHoursRepository() *fakeHoursRepository {
	return &fakeHoursRepository{entries: make(map[string]*entities.HoursEntry)}
}

func (r *fakeHoursRepository) CreateHoursEntry(_ context.Context, entry *entities.HoursEntry) error {
	r.entries[entry.ID.String()] = entry
	return nil
}

func (r *fakeHoursRepository) GetHoursEntryByID(_ context.Context, id string) (*entities.HoursEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (r *fakeHoursRepository) GetHoursEntries(_ context.Context, userID string, projectID string) ([]*entities.HoursEntry, error) {
	var entries []*entities.HoursEntry
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

func (r *fakeHoursRepository) DeleteHoursEntry(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeHoursRepository) GetTotalHours(_ context.Context, userID string, projectID string) (float64, error) {
	var total float64
	for _, entry := range r.entries {
		if entry.UserID.String() != userID {
			continue
		}
		if projectID != "" && entry.ProjectID.String() != projectID {
			continue
		}
		total += entry.Hours
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

type hoursFixture struct {
	service   HoursService
	hoursRepo *fakeHoursRepository

	userID  uuid.UUID
	project *entities.Project
}

func newHoursFixture(t *testing.T) *hoursFixture {
	t.Helper()

	hoursRepo := newFakeHoursRepository()
	projectRepo := newFakeProjectRepository()

	userID := uuid.New()
	project := &entities.Project{ID: uuid.New(), UserID: userID, Name: "Kitchen Remodel"}
	require.NoError(t, projectRepo.CreateProject(context.Background(), project))

	return &hoursFixture{
		service:   NewHoursService(hoursRepo, projectRepo),
		hoursRepo: hoursRepo,
		userID:    userID,
		project:   project,
	}
}

func TestCreateHoursEntry(t *testing.T) {
	ctx := context.Background()

	newRequest := func(projectID string) domain.CreateHoursEntryRequest {
		return domain.CreateHoursEntryRequest{
			ProjectID:   projectID,
			Date:        "2025-02-10",
			Hours:       6.5,
			Description: "framing",
		}
	}

	t.Run("unknown project", func(t *testing.T) {
		f := newHoursFixture(t)

		_, err := f.service.CreateHoursEntry(ctx, newRequest(uuid.NewString()), f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProjectNotFound))
		assert.Empty(t, f.hoursRepo.entries)
	})

	t.Run("project of another user", func(t *testing.T) {
		f := newHoursFixture(t)
		other := &entities.Project{ID: uuid.New(), UserID: uuid.New(), Name: "Not Yours"}
		projectRepo := &fakeProjectRepository{projects: map[string]*entities.Project{other.ID.String(): other}}
		service := NewHoursService(f.hoursRepo, projectRepo)

		_, err := service.CreateHoursEntry(ctx, newRequest(other.ID.String()), f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorizedProjectAccess))
		assert.Empty(t, f.hoursRepo.entries)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newHoursFixture(t)
		req := newRequest(f.project.ID.String())
		req.Date = "02/10/2025"

		_, err := f.service.CreateHoursEntry(ctx, req, f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidEntryDate))
	})

	t.Run("nonpositive hours", func(t *testing.T) {
		f := newHoursFixture(t)
		req := newRequest(f.project.ID.String())
		req.Hours = 0

		_, err := f.service.CreateHoursEntry(ctx, req, f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidHours))
	})

	t.Run("successful create", func(t *testing.T) {
		f := newHoursFixture(t)

		res, err := f.service.CreateHoursEntry(ctx, newRequest(f.project.ID.String()), f.userID.String())
		require.NoError(t, err)
		assert.Equal(t, 6.5, res.Hours)
		assert.Equal(t, "framing", res.Description)
		assert.Len(t, f.hoursRepo.entries, 1)
	})
}

func TestGetHoursEntries(t *testing.T) {
	ctx := context.Background()

	f := newHoursFixture(t)
	for _, h := range []float64{6.5, 2.0} {
		_, err := f.service.CreateHoursEntry(ctx, domain.CreateHoursEntryRequest{
			ProjectID: f.project.ID.String(),
			Date:      "2025-02-10",
			Hours:     h,
		}, f.userID.String())
		require.NoError(t, err)
	}

	res, err := f.service.GetHoursEntries(ctx, f.userID.String(), f.project.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, 8.5, res.TotalHours)

	res, err = f.service.GetHoursEntries(ctx, f.userID.String(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Zero(t, res.TotalHours)
}

func TestDeleteHoursEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown entry", func(t *testing.T) {
		f := newHoursFixture(t)

		err := f.service.DeleteHoursEntry(ctx, uuid.NewString(), f.userID.String())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrHoursEntryNotFound))
	})

	t.Run("entry of another user", func(t *testing.T) {
		f := newHoursFixture(t)
		entry := &entities.HoursEntry{ID: uuid.New(), UserID: f.userID, ProjectID: f.project.ID, Hours: 4, Date: time.Now()}
		require.NoError(t, f.hoursRepo.CreateHoursEntry(ctx, entry))

		err := f.service.DeleteHoursEntry(ctx, entry.ID.String(), uuid.NewString())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorizedEntryAccess))
		assert.Len(t, f.hoursRepo.entries, 1)
	})

	t.Run("successful delete", func(t *testing.T) {
		f := newHoursFixture(t)
		entry := &entities.HoursEntry{ID: uuid.New(), UserID: f.userID, ProjectID: f.project.ID, Hours: 4, Date: time.Now()}
		require.NoError(t, f.hoursRepo.CreateHoursEntry(ctx, entry))

		require.NoError(t, f.service.DeleteHoursEntry(ctx, entry.ID.String(), f.userID.String()))
		assert.Empty(t, f.hoursRepo.entries)
	})
}
