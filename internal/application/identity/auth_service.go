package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/infrastructure/auth"
)

// AuthService handles login and token issuance
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a shop member by phone and password and issues an
// access token. Lookup failures and bad passwords produce the same error so
// the endpoint does not leak which phones exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByPhone(ctx, req.ShopID, req.Phone)
	if err != nil {
		s.logger.Warn("Login attempt for unknown phone",
			zap.String("shop_id", req.ShopID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid phone or password")
	}

	if !user.IsActive {
		s.logger.Warn("Login attempt for deactivated user",
			zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid phone or password")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		ShopID: user.ShopID,
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue token")
	}

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        ToUserResponse(user),
	}, nil
}
