package user

import (
	"context"
	"sync"
	"testing"

	"foodkeeper-backend/domain"
	"foodkeeper-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*entities.User
	tokens map[string]*entities.DeviceToken
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:  map[uuid.UUID]*entities.User{},
		tokens: map[string]*entities.DeviceToken{},
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	user, ok := r.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpsertDeviceToken(_ context.Context, token *entities.DeviceToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	r.tokens[token.Token] = &clone
	return nil
}

func (r *fakeUserRepository) GetDeviceTokensByUserID(_ context.Context, userID uuid.UUID) ([]*entities.DeviceToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.DeviceToken
	for _, token := range r.tokens {
		if token.UserID == userID {
			out = append(out, token)
		}
	}
	return out, nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-for-" + userId
}

func (fakeJWTService) ValidateTokenUser(string) (*jwtlib.Token, error) { return nil, nil }

func (fakeJWTService) GetUserIDByToken(string) (string, string, error) { return "", "", nil }

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	resp, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+resp.ID, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Impostor",
		Email:    "alice@example.com",
		Password: "different-pass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	_, regErr := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, regErr)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestRegisterDeviceTokenUpserts(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	userID := uuid.New()

	err := service.RegisterDeviceToken(context.Background(), domain.RegisterDeviceTokenRequest{
		Token:      "fcm-token-1",
		DeviceInfo: "pixel 8",
	}, userID.String())
	require.NoError(t, err)

	// Re-registering the same token keeps one row.
	err = service.RegisterDeviceToken(context.Background(), domain.RegisterDeviceTokenRequest{
		Token:      "fcm-token-1",
		DeviceInfo: "pixel 8 restored",
	}, userID.String())
	require.NoError(t, err)

	tokens, err := repo.GetDeviceTokensByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	err = service.RegisterDeviceToken(context.Background(), domain.RegisterDeviceTokenRequest{
		Token: "fcm-token-2",
	}, "bad-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
