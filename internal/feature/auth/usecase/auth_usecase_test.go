package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_backend/internal/feature/client/domain/entity"
	clientusecase "restaurant_backend/internal/feature/client/usecase"
	"restaurant_backend/internal/platform/metrics"
	"restaurant_backend/internal/platform/password"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/identity"
)

// mockUserRepository is a mock implementation of UserRepository.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(c *entity.Client) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(email string) (*entity.Client, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, c *entity.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(c)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	// Default: return user not found error
	return nil, clientusecase.ErrClientNotFound
}

// mockTokenIssuer is a mock implementation of TokenIssuer.
type mockTokenIssuer struct {
	IssueFunc func(email string, role identity.Role) (string, error)
	calls     int
}

// Issue is the mock implementation of the Issue method.
func (m *mockTokenIssuer) Issue(email string, role identity.Role) (string, error) {
	m.calls++
	if m.IssueFunc != nil {
		return m.IssueFunc(email, role)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// mockRecorder collects the recorded login outcomes.
type mockRecorder struct {
	outcomes []string
}

func (m *mockRecorder) RecordLogin(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

// testHasher uses the real bcrypt hasher at the minimum cost.
var testHasher = password.NewBcryptHasher(4)

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	h, err := testHasher.Hash(plaintext)
	require.NoError(t, err)
	return h
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		var stored *entity.Client
		repo := &mockUserRepository{
			CreateFunc: func(c *entity.Client) error {
				stored = c
				return nil
			},
		}
		uc := NewAuthUsecase(repo, testHasher, &mockTokenIssuer{}, nil)

		err := uc.Register(context.Background(), &entity.Client{
			Nom: "Amina", Email: " Amina@Example.com", Password: "password123", Role: identity.RoleAdmin,
		})
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.NotEmpty(t, stored.ID)
		assert.Equal(t, "amina@example.com", stored.Email)
		assert.Equal(t, identity.RoleAdmin, stored.Role)
		assert.NotEqual(t, "password123", stored.Password, "password is not hashed")
		assert.True(t, testHasher.Verify("password123", stored.Password), "invalid bcrypt hash")
	})

	t.Run("missing role defaults to CLIENT", func(t *testing.T) {
		var stored *entity.Client
		repo := &mockUserRepository{CreateFunc: func(c *entity.Client) error { stored = c; return nil }}
		uc := NewAuthUsecase(repo, testHasher, &mockTokenIssuer{}, nil)

		require.NoError(t, uc.Register(context.Background(), &entity.Client{Email: "a@example.com", Password: "password123"}))
		assert.Equal(t, identity.RoleClient, stored.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		createCalled := false
		repo := &mockUserRepository{
			FindByEmailFunc: func(email string) (*entity.Client, error) {
				return &entity.Client{ID: "existing", Email: email}, nil
			},
			CreateFunc: func(c *entity.Client) error {
				createCalled = true
				return nil
			},
		}
		uc := NewAuthUsecase(repo, testHasher, &mockTokenIssuer{}, nil)

		err := uc.Register(context.Background(), &entity.Client{Email: "a@example.com", Password: "password123"})
		assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
		assert.False(t, createCalled, "first identity must be left untouched")
	})

	t.Run("duplicate detected by the store", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(c *entity.Client) error { return apperror.ErrDuplicateEmail },
		}
		uc := NewAuthUsecase(repo, testHasher, &mockTokenIssuer{}, nil)

		err := uc.Register(context.Background(), &entity.Client{Email: "a@example.com", Password: "password123"})
		assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(email string) (*entity.Client, error) { return nil, errors.New("db down") },
		}
		uc := NewAuthUsecase(repo, testHasher, &mockTokenIssuer{}, nil)

		err := uc.Register(context.Background(), &entity.Client{Email: "a@example.com", Password: "password123"})
		assert.EqualError(t, err, "db down")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	digest := mustHash(t, "password123")
	existing := func(email string) (*entity.Client, error) {
		if email != "user@example.com" {
			return nil, clientusecase.ErrClientNotFound
		}
		return &entity.Client{ID: "c1", Email: email, Password: digest, Role: identity.RoleClient}, nil
	}

	tests := []struct {
		name         string
		email        string
		password     string
		find         func(email string) (*entity.Client, error)
		issue        func(email string, role identity.Role) (string, error)
		wantToken    string
		wantErr      error
		wantErrText  string
		wantIssued   int
		wantOutcomes []string
	}{
		{
			name:         "successful login",
			email:        "User@Example.com",
			password:     "password123",
			find:         existing,
			wantToken:    "mock-jwt-token",
			wantIssued:   1,
			wantOutcomes: []string{metrics.LoginSuccess},
		},
		{
			name:         "wrong password",
			email:        "user@example.com",
			password:     "wrong-password",
			find:         existing,
			wantErr:      apperror.ErrInvalidCredentials,
			wantOutcomes: []string{metrics.LoginFailure},
		},
		{
			name:         "unknown email",
			email:        "ghost@example.com",
			password:     "password123",
			find:         existing,
			wantErr:      apperror.ErrInvalidCredentials,
			wantOutcomes: []string{metrics.LoginFailure},
		},
		{
			name:        "store failure",
			email:       "user@example.com",
			password:    "password123",
			find:        func(string) (*entity.Client, error) { return nil, errors.New("db down") },
			wantErrText: "db down",
		},
		{
			name:     "token generation failure",
			email:    "user@example.com",
			password: "password123",
			find:     existing,
			issue: func(string, identity.Role) (string, error) {
				return "", errors.New("signing failed")
			},
			wantErrText: "failed to generate token: signing failed",
			wantIssued:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &mockTokenIssuer{IssueFunc: tt.issue}
			recorder := &mockRecorder{}
			uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: tt.find}, testHasher, tokens, recorder)

			token, err := uc.Login(context.Background(), tt.email, tt.password)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			case tt.wantErrText != "":
				assert.EqualError(t, err, tt.wantErrText)
				assert.Empty(t, token)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
			assert.Equal(t, tt.wantIssued, tokens.calls, "token service calls")
			assert.Equal(t, tt.wantOutcomes, recorder.outcomes)
		})
	}
}
