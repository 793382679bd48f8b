package usecase_test

import (
	"context"
	"io"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/email"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
func (m *MockPostRepo) Update(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockPostRepo) FetchForFeed(ctx context.Context, postType string) ([]domain.Post, error) {
	args := m.Called(ctx, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}
func (m *MockPostRepo) FetchByUser(ctx context.Context, userID, postType string) ([]domain.Post, error) {
	args := m.Called(ctx, userID, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}
func (m *MockPostRepo) HasApplications(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) Create(ctx context.Context, follow *domain.Follow) error {
	return m.Called(ctx, follow).Error(0)
}
func (m *MockFollowRepo) Delete(ctx context.Context, followerID, followingID string) error {
	return m.Called(ctx, followerID, followingID).Error(0)
}
func (m *MockFollowRepo) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFollowRepo) ListFollowers(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowUser), args.Error(1)
}
func (m *MockFollowRepo) ListFollowing(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowUser), args.Error(1)
}
func (m *MockFollowRepo) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockFollowRepo) Counts(ctx context.Context, userID string) (*domain.FollowCounts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FollowCounts), args.Error(1)
}

type MockCVRepo struct {
	mock.Mock
}

func (m *MockCVRepo) Create(ctx context.Context, cv *domain.CV) error {
	return m.Called(ctx, cv).Error(0)
}
func (m *MockCVRepo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CV), args.Error(1)
}
func (m *MockCVRepo) ListByUser(ctx context.Context, userID string) ([]domain.CV, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CV), args.Error(1)
}
func (m *MockCVRepo) Update(ctx context.Context, cv *domain.CV) error {
	return m.Called(ctx, cv).Error(0)
}
func (m *MockCVRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCVRepo) IsUsable(ctx context.Context, id int64, ownerID string) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCVRepo) HasApplications(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByPostOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Application, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to string) error {
	return m.Called(ctx, id, from, to).Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}
func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}
func (m *MockNotifier) SendStatusUpdate(to string, data email.StatusEmailData) error {
	return m.Called(to, data).Error(0)
}

// fixedClock returns a deterministic clock for expiration-sensitive tests.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
