package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/user"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, string, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, string, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (auth.MeResponse, error)

	// GoogleRedirectURL starts the OAuth2 flow.
	GoogleRedirectURL(userAgent string) string
	// GoogleLogin completes the OAuth2 flow for an already registered user.
	GoogleLogin(ctx context.Context, code string) (auth.TokenResponse, string, error)
}

type AuthServiceImpl struct {
	userRepo      user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, string, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", err
	}
	if !user.IsValidRole(req.Role) {
		return auth.TokenResponse{}, "", fmt.Errorf("invalid role: %s", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.TokenResponse{}, "", err
	}

	return a.issueTokens(created)
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", auth.ErrInvalidCredentials
	}

	return a.issueTokens(u)
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, string, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, "", auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, "", auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, "", auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, "", auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, "", auth.ErrInvalidToken
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, "", err
	}

	// Rotate: the presented refresh token is single-use.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(u)
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.MeResponse, error) {
	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.MeResponse{}, auth.ErrUserNotFound
		}
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		UserID:     u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}, nil
}

func (a *AuthServiceImpl) GoogleRedirectURL(userAgent string) string {
	state := a.googleService.GenerateState(userAgent)
	return a.googleService.RedirectURL(state)
}

func (a *AuthServiceImpl) GoogleLogin(ctx context.Context, code string) (auth.TokenResponse, string, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, "", fmt.Errorf("failed to exchange code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, "", fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, "", auth.ErrInvalidCredentials
	}

	u, err := a.userRepo.GetByGoogleID(ctx, info.GoogleID)
	if errors.Is(err, user.ErrUserNotFound) {
		// Fall back to email and link the account.
		u, err = a.userRepo.GetByEmail(ctx, info.Email)
		if err == nil {
			u.GoogleID = &info.GoogleID
			if updateErr := a.userRepo.Update(ctx, u); updateErr != nil {
				return auth.TokenResponse{}, "", updateErr
			}
		}
	}
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, "", err
	}

	return a.issueTokens(u)
}

// issueTokens returns the access token response plus the refresh token for
// the cookie.
func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, string, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, refreshToken, nil
}
