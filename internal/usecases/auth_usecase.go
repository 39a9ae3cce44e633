package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/domain/repositories"
	"verifyme.backend/pkg/crypto"
	"verifyme.backend/pkg/jwt"
	"verifyme.backend/pkg/logger"
	"verifyme.backend/pkg/mail"
	"verifyme.backend/pkg/redis"
)

const resetTokenExpiry = 24 * time.Hour

// AuthUsecase handles company authentication business logic
type AuthUsecase struct {
	companyRepo  repositories.CompanyRepository
	jwtService   *jwt.JWTService
	mailer       mail.Mailer
	sessionStore *redis.SessionStore
	tokenExpiry  time.Duration
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	companyRepo repositories.CompanyRepository,
	jwtService *jwt.JWTService,
	mailer mail.Mailer,
	sessionStore *redis.SessionStore,
	tokenExpiry time.Duration,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		companyRepo:  companyRepo,
		jwtService:   jwtService,
		mailer:       mailer,
		sessionStore: sessionStore,
		tokenExpiry:  tokenExpiry,
		sessionTTL:   sessionTTL,
	}
}

// Register creates a new company account and sends a verification email
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.Company, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Check if email already exists
	_, err := u.companyRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("a company with this email already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}

	company := &entities.Company{
		Name:                     strings.TrimSpace(input.Name),
		Email:                    email,
		PasswordHash:             passwordHash,
		IsVerified:               false,
		VerificationToken:        null.StringFrom(token),
		VerificationTokenExpires: null.TimeFrom(time.Now().Add(u.tokenExpiry)),
		SubscriptionStatus:       entities.SubscriptionTrial,
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	// Mail failure must not lose the account; the token stays valid for
	// a later resend.
	if err := u.mailer.SendVerificationEmail(company.Email, token); err != nil {
		logger.Error(ctx, "failed to send verification email",
			zap.String("company_id", company.ID.String()),
			zap.Error(err))
	}

	return company, nil
}

// Login authenticates a company and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	company, err := u.companyRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, company.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !company.IsVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(company.ID, company.Email)
	if err != nil {
		return nil, err
	}

	if err := u.sessionStore.CreateSession(ctx, company.ID.String(), &redis.SessionData{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, u.sessionTTL); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Company:      company,
	}, nil
}

// VerifyEmail redeems a verification token. Expired or already used
// tokens surface as not found.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	company, err := u.companyRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	return u.companyRepo.MarkVerified(ctx, company.ID)
}

// ForgotPassword issues a password reset token. It never reveals whether
// the email exists.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	company, err := u.companyRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return err
	}

	if err := u.companyRepo.SetResetToken(ctx, company.ID, token, time.Now().Add(resetTokenExpiry)); err != nil {
		return err
	}

	if err := u.mailer.SendPasswordResetEmail(company.Email, token); err != nil {
		logger.Error(ctx, "failed to send password reset email",
			zap.String("company_id", company.ID.String()),
			zap.Error(err))
	}

	return nil
}

// ResetPassword completes a password reset using a valid token
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	company, err := u.companyRepo.GetByResetToken(ctx, input.Token)
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return err
	}

	if err := u.companyRepo.UpdatePassword(ctx, company.ID, passwordHash); err != nil {
		return err
	}

	// Force re-login everywhere after a password change
	if err := u.sessionStore.DeleteSession(ctx, company.ID.String()); err != nil {
		logger.Warn(ctx, "failed to revoke session after password reset",
			zap.String("company_id", company.ID.String()),
			zap.Error(err))
	}

	return nil
}

// RefreshToken rotates the token pair. The refresh token must match the
// one stored in the active session, so logout revokes it.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	session, err := u.sessionStore.GetSession(ctx, claims.CompanyID.String())
	if err != nil || session.RefreshToken != refreshToken {
		return nil, domainerrors.ErrUnauthorized
	}

	company, err := u.companyRepo.GetByID(ctx, claims.CompanyID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(company.ID, company.Email)
	if err != nil {
		return nil, err
	}

	if err := u.sessionStore.CreateSession(ctx, company.ID.String(), &redis.SessionData{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, u.sessionTTL); err != nil {
		return nil, err
	}

	return tokenPair, nil
}

// Logout revokes the company's session
func (u *AuthUsecase) Logout(ctx context.Context, companyID uuid.UUID) error {
	return u.sessionStore.DeleteSession(ctx, companyID.String())
}

// GetCompanyByID gets a company by ID
func (u *AuthUsecase) GetCompanyByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}
