package auth

import (
	"context"
	"errors"
	"testing"

	"bt2horizon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) GenerateToken(userID int64, email, role string) (string, error) {
	return "test-token", nil
}

type recordingTokenIssuer struct {
	userID int64
	email  string
	role   string
}

func (r *recordingTokenIssuer) GenerateToken(userID int64, email, role string) (string, error) {
	r.userID, r.email, r.role = userID, email, role
	return "test-token", nil
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(users, stubTokenIssuer{})

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "New@Example.com",
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Register_TokenAndViewCarryRole(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	issuer := &recordingTokenIssuer{}
	svc := NewService(users, issuer)

	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), issuer.userID)
	assert.Equal(t, "new@example.com", issuer.email)
	assert.Equal(t, "user", issuer.role)
	assert.Equal(t, "user", toUserView(user).Role)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(users, stubTokenIssuer{})

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_InvalidEnums(t *testing.T) {
	svc := NewService(new(MockUserRepository), stubTokenIssuer{})

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "secret123",
		Gender:   "unknown",
	})
	assert.ErrorIs(t, err, ErrInvalidGender)

	_, _, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "secret123",
		AgeRange: "80-89",
	})
	assert.ErrorIs(t, err, ErrInvalidAgeRange)
}

func TestService_Register_ExplicitNameWins(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, stubTokenIssuer{})

	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "a@b.com",
		Password:  "secret123",
		Name:      "Travel Fan",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Travel Fan", user.Name)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           7,
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	svc := NewService(users, stubTokenIssuer{})

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "User@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "test-token", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, stubTokenIssuer{})

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errors.New("record not found"))

	svc := NewService(users, stubTokenIssuer{})

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
