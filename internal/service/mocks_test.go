package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"gameborrow/internal/models"
	"gameborrow/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByEmailVerificationToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByPasswordToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func userOrNil(v any) *models.User {
	if v == nil {
		return nil
	}
	return v.(*models.User)
}

type MockPublisherRepository struct {
	mock.Mock
}

func (m *MockPublisherRepository) Create(ctx context.Context, publisher *models.Publisher) error {
	args := m.Called(ctx, publisher)
	return args.Error(0)
}

func (m *MockPublisherRepository) GetAll(ctx context.Context) ([]models.Publisher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Publisher), args.Error(1)
}

func (m *MockPublisherRepository) GetByID(ctx context.Context, publisherID string) (*models.Publisher, error) {
	args := m.Called(ctx, publisherID)
	return publisherOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPublisherRepository) GetByGameID(ctx context.Context, gameID string) (*models.Publisher, error) {
	args := m.Called(ctx, gameID)
	return publisherOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPublisherRepository) Update(ctx context.Context, publisher *models.Publisher) error {
	args := m.Called(ctx, publisher)
	return args.Error(0)
}

func (m *MockPublisherRepository) AddGame(ctx context.Context, publisherID, gameID string) error {
	args := m.Called(ctx, publisherID, gameID)
	return args.Error(0)
}

func (m *MockPublisherRepository) RemoveGame(ctx context.Context, publisherID, gameID string) error {
	args := m.Called(ctx, publisherID, gameID)
	return args.Error(0)
}

func (m *MockPublisherRepository) AddUser(ctx context.Context, publisherID, userID string) error {
	args := m.Called(ctx, publisherID, userID)
	return args.Error(0)
}

func publisherOrNil(v any) *models.Publisher {
	if v == nil {
		return nil
	}
	return v.(*models.Publisher)
}

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) Update(ctx context.Context, game *models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, gameID string) error {
	args := m.Called(ctx, gameID)
	return args.Error(0)
}

func (m *MockGameRepository) AddImage(ctx context.Context, gameID, imageURI string) error {
	args := m.Called(ctx, gameID, imageURI)
	return args.Error(0)
}

type MockHealthRepository struct {
	mock.Mock
}

func (m *MockHealthRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadGameImage(ctx context.Context, gameID, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, gameID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteObject(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorage) ObjectNameFromURL(uri string) (string, bool) {
	args := m.Called(uri)
	return args.String(0), args.Bool(1)
}

func (m *MockStorage) BucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendHTMLTemplateEmail(ctx context.Context, recipients []string, subject, template string, data map[string]any) error {
	args := m.Called(ctx, recipients, subject, template, data)
	return args.Error(0)
}

// fakeTx runs the callback against repositories built from the same mocks,
// so tests can assert on the writes made inside a transaction.
type fakeTx struct {
	repo   *repository.Repository
	called int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(tx *repository.Repository) error) error {
	f.called++
	return fn(f.repo)
}
