package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobcost-backend/domain"
	"jobcost-backend/entities"
	"jobcost-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.byID[user.ID.String()] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.byID[user.ID.String()] = user
	r.byEmail[user.Email] = user
	return nil
}

type userFixture struct {
	service    UserService
	userRepo   *fakeUserRepository
	jwtService jwt.JWTService
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	userRepo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()

	return &userFixture{
		service:    NewUserService(userRepo, jwtService),
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (f *userFixture) createUser(t *testing.T, email string, password string) *entities.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hashed),
		FirstName: "Sam",
		LastName:  "Carter",
		Role:      domain.RoleUser,
	}
	require.NoError(t, f.userRepo.CreateUser(context.Background(), user))
	return user
}

func (f *userFixture) tokenWithPurpose(t *testing.T, userID string, purpose string) string {
	t.Helper()

	token, err := f.jwtService.GenerateTokenWithClaims(map[string]any{
		"user_id": userID,
		"purpose": purpose,
	}, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("successful register", func(t *testing.T) {
		f := newUserFixture(t)

		res, err := f.service.Register(ctx, domain.RegisterRequest{
			Email:     "sam@example.com",
			Password:  "hunter2hunter2",
			FirstName: "Sam",
		})
		require.NoError(t, err)
		assert.Equal(t, "sam@example.com", res.Email)

		stored := f.userRepo.byEmail["sam@example.com"]
		require.NotNil(t, stored)
		assert.Equal(t, domain.RoleUser, stored.Role)
		assert.False(t, stored.IsVerified)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2hunter2")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newUserFixture(t)
		f.createUser(t, "sam@example.com", "hunter2hunter2")

		_, err := f.service.Register(ctx, domain.RegisterRequest{
			Email:     "sam@example.com",
			Password:  "anotherpassword",
			FirstName: "Sam",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.service.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newUserFixture(t)
		f.createUser(t, "sam@example.com", "hunter2hunter2")

		_, err := f.service.Login(ctx, domain.LoginRequest{Email: "sam@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})

	t.Run("successful login", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")

		res, err := f.service.Login(ctx, domain.LoginRequest{Email: "sam@example.com", Password: "hunter2hunter2"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, res.Role)

		id, role, err := f.jwtService.GetUserIDByToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), id)
		assert.Equal(t, domain.RoleUser, role)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		f := newUserFixture(t)

		err := f.service.UpdateUser(ctx, uuid.NewString(), domain.UpdateUserRequest{FirstName: "Pat"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	})

	t.Run("applies only provided fields", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")

		require.NoError(t, f.service.UpdateUser(ctx, user.ID.String(), domain.UpdateUserRequest{FirstName: "Pat"}))

		updated := f.userRepo.byID[user.ID.String()]
		assert.Equal(t, "Pat", updated.FirstName)
		assert.Equal(t, "Carter", updated.LastName)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the user verified", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")
		token := f.tokenWithPurpose(t, user.ID.String(), "verify_email")

		require.NoError(t, f.service.VerifyEmail(ctx, token))
		assert.True(t, f.userRepo.byID[user.ID.String()].IsVerified)
	})

	t.Run("rejects a reset token", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")
		token := f.tokenWithPurpose(t, user.ID.String(), "reset_password")

		err := f.service.VerifyEmail(ctx, token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrTokenInvalid))
		assert.False(t, f.userRepo.byID[user.ID.String()].IsVerified)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		f := newUserFixture(t)

		err := f.service.VerifyEmail(ctx, "not-a-token")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrTokenInvalid))
	})
}

func TestSendVerificationEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		f := newUserFixture(t)

		err := f.service.SendVerificationEmail(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	})

	t.Run("already verified", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")
		user.IsVerified = true

		err := f.service.SendVerificationEmail(ctx, "sam@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserAlreadyVerified))
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes the password", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")
		token := f.tokenWithPurpose(t, user.ID.String(), "reset_password")

		require.NoError(t, f.service.ResetPassword(ctx, domain.ResetPasswordRequest{
			Token:    token,
			Password: "newpassword123",
		}))

		updated := f.userRepo.byID[user.ID.String()]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword123")))
	})

	t.Run("rejects a verification token", func(t *testing.T) {
		f := newUserFixture(t)
		user := f.createUser(t, "sam@example.com", "hunter2hunter2")
		before := user.Password
		token := f.tokenWithPurpose(t, user.ID.String(), "verify_email")

		err := f.service.ResetPassword(ctx, domain.ResetPasswordRequest{
			Token:    token,
			Password: "newpassword123",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrTokenInvalid))
		assert.Equal(t, before, f.userRepo.byID[user.ID.String()].Password)
	})

	t.Run("unknown user in token", func(t *testing.T) {
		f := newUserFixture(t)
		token := f.tokenWithPurpose(t, uuid.NewString(), "reset_password")

		err := f.service.ResetPassword(ctx, domain.ResetPasswordRequest{
			Token:    token,
			Password: "newpassword123",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	})
}
