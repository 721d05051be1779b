package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"gameborrow/internal/models"
)

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) GetAll(ctx context.Context) ([]models.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameService) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) Create(ctx context.Context, userID string, req models.CreateGameRequest) (*models.Game, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) Update(ctx context.Context, userID, gameID string, upd models.GameUpdate) error {
	args := m.Called(ctx, userID, gameID, upd)
	return args.Error(0)
}

func (m *MockGameService) Delete(ctx context.Context, userID, gameID string) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

func (m *MockGameService) AddImage(ctx context.Context, userID, gameID, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, userID, gameID, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockPublisherService struct {
	mock.Mock
}

func (m *MockPublisherService) GetAll(ctx context.Context) ([]models.Publisher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Publisher), args.Error(1)
}

func (m *MockPublisherService) GetByID(ctx context.Context, publisherID string) (*models.Publisher, error) {
	args := m.Called(ctx, publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publisher), args.Error(1)
}

func (m *MockPublisherService) Create(ctx context.Context, userID string, req models.CreatePublisherRequest) (*models.Publisher, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publisher), args.Error(1)
}

func (m *MockPublisherService) Update(ctx context.Context, userID, publisherID string, upd models.PublisherUpdate) error {
	args := m.Called(ctx, userID, publisherID, upd)
	return args.Error(0)
}

func (m *MockPublisherService) AddUser(ctx context.Context, userID, publisherID, userEmail string) error {
	args := m.Called(ctx, userID, publisherID, userEmail)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) VerifyEmail(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserService) ResetPassword(ctx context.Context, token, password string) error {
	args := m.Called(ctx, token, password)
	return args.Error(0)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
