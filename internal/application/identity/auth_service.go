package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

const resetTokenTTL = time.Hour

// AuthService handles registration, login and the password lifecycle.
type AuthService struct {
	userRepo   identity.UserRepository
	resetRepo  identity.PasswordResetRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	mailer     notification.Mailer
	baseURL    string
	logger     *zap.Logger
}

func NewAuthService(
	userRepo identity.UserRepository,
	resetRepo identity.PasswordResetRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	mailer notification.Mailer,
	baseURL string,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		resetRepo:  resetRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		mailer:     mailer,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Register creates a customer account and logs it in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("User with this email already exists")
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail is best effort; registration never fails on it.
	if err := s.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		s.logger.Warn("Failed to send welcome email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}

	tokens, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return &AuthResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// Login verifies credentials and issues tokens. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	invalidCredentials := shared.NewDomainError(shared.KindUnauthorized, "Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if shared.IsKind(err, shared.KindNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.NewDomainError(shared.KindForbidden, "Account is deactivated")
	}
	if !user.VerifyPassword(req.Password) {
		return nil, invalidCredentials
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("Failed to record login time",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}

	tokens, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// Refresh rotates a refresh token into a fresh pair. The old refresh
// token is revoked so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.ErrUnauthorized
	}

	userID, err := shared.ParseID(claims.UserID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if shared.IsKind(err, shared.KindNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.ErrUnauthorized
	}

	if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
		if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
			s.logger.Warn("Failed to revoke rotated refresh token", zap.Error(err))
		}
	}

	tokens, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// Logout revokes the current access token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Revoke(ctx, claims.ID, ttl)
}

// ForgotPassword mints a reset token and emails the link. Unknown
// addresses succeed silently so the endpoint cannot be used to probe
// for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if shared.IsKind(err, shared.KindNotFound) {
			return nil
		}
		return err
	}

	if err := s.resetRepo.DeleteForUser(ctx, user.ID); err != nil {
		return err
	}
	token, secret, err := identity.NewPasswordResetToken(user.ID, resetTokenTTL)
	if err != nil {
		return err
	}
	if err := s.resetRepo.Save(ctx, token); err != nil {
		return err
	}

	resetLink := s.baseURL + "/reset-password?token=" + secret
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		s.logger.Error("Failed to send password reset email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ResetPassword completes the reset flow with a valid token.
func (s *AuthService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	token, err := s.resetRepo.FindByHash(ctx, identity.HashResetToken(req.Token))
	if err != nil {
		if shared.IsKind(err, shared.KindNotFound) {
			return shared.NewValidationError("Invalid or expired reset token")
		}
		return err
	}
	if err := token.Consume(time.Now()); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	if err := user.ResetPassword(req.Password); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	if err := s.resetRepo.Save(ctx, token); err != nil {
		return err
	}

	s.logger.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

// ChangePassword changes the password of a logged-in user.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := shared.ParseID(userID)
	if err != nil {
		return err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}
