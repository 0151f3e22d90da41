package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/user"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

type stubGoogleService struct {
	info oauth.GoogleInformation
}

func (s stubGoogleService) GenerateState(userAgent string) string { return "state" }
func (s stubGoogleService) RedirectURL(state string) string       { return "https://example.com/oauth" }

func (s stubGoogleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "token"}, nil
}

func (s stubGoogleService) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return s.info, nil
}

func newTestService(google oauth.GoogleService) (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService, google), repo
}

func registerRequest(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:    email,
		Password: "password123",
		Role:     "HR",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(stubGoogleService{})

	tokens, refreshToken, err := svc.Register(ctx, registerRequest("hr@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)

	tokens, _, err = svc.Login(ctx, auth.LoginRequest{Email: "hr@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(stubGoogleService{})

	_, _, err := svc.Register(ctx, registerRequest("hr@example.com"))
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, auth.LoginRequest{Email: "hr@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		_, _, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		_, _, err := svc.Register(ctx, registerRequest("hr@example.com"))
		assert.ErrorIs(t, err, user.ErrUserEmailExists)
	})
}

func TestRefreshRotation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(stubGoogleService{})

	_, refreshToken, err := svc.Register(ctx, registerRequest("hr@example.com"))
	require.NoError(t, err)

	tokens, rotated, err := svc.Refresh(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, refreshToken, rotated)

	// The presented token is single-use.
	_, _, err = svc.Refresh(ctx, refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// The rotated one still works.
	_, _, err = svc.Refresh(ctx, rotated)
	assert.NoError(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(stubGoogleService{})

	tokens, _, err := svc.Register(ctx, registerRequest("hr@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(stubGoogleService{})

	_, refreshToken, err := svc.Register(ctx, registerRequest("hr@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, refreshToken))

	_, _, err = svc.Refresh(ctx, refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(stubGoogleService{})

	_, _, err := svc.Register(ctx, registerRequest("hr@example.com"))
	require.NoError(t, err)

	var userID string
	for id := range repo.users {
		userID = id
	}

	me, err := svc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", me.Email)
	assert.Equal(t, "HR", me.Role)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("links an existing account by email", func(t *testing.T) {
		google := stubGoogleService{info: oauth.GoogleInformation{
			GoogleID:      "google-123",
			Email:         "hr@example.com",
			Name:          "Jane Doe",
			VerifiedEmail: true,
		}}
		svc, repo := newTestService(google)

		_, _, err := svc.Register(ctx, registerRequest("hr@example.com"))
		require.NoError(t, err)

		tokens, _, err := svc.GoogleLogin(ctx, "auth-code")
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)

		linked, err := repo.GetByGoogleID(ctx, "google-123")
		require.NoError(t, err)
		assert.Equal(t, "hr@example.com", linked.Email)
	})

	t.Run("unverified email is rejected", func(t *testing.T) {
		google := stubGoogleService{info: oauth.GoogleInformation{
			GoogleID: "google-123",
			Email:    "hr@example.com",
		}}
		svc, _ := newTestService(google)

		_, _, err := svc.GoogleLogin(ctx, "auth-code")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown account cannot sign in", func(t *testing.T) {
		google := stubGoogleService{info: oauth.GoogleInformation{
			GoogleID:      "google-999",
			Email:         "stranger@example.com",
			VerifiedEmail: true,
		}}
		svc, _ := newTestService(google)

		_, _, err := svc.GoogleLogin(ctx, "auth-code")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}
