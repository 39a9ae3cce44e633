package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/infrastructure/models"
)

// CompanyRepository implements company account data operations
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	m := &models.Company{
		ID:                       company.ID,
		Name:                     company.Name,
		Email:                    company.Email,
		PasswordHash:             company.PasswordHash,
		IsVerified:               company.IsVerified,
		VerificationToken:        company.VerificationToken.Ptr(),
		VerificationTokenExpires: company.VerificationTokenExpires.Ptr(),
		ResetToken:               company.ResetToken.Ptr(),
		ResetTokenExpires:        company.ResetTokenExpires.Ptr(),
		SubscriptionStatus:       string(company.SubscriptionStatus),
		CreatedAt:                company.CreatedAt,
		UpdatedAt:                company.UpdatedAt,
	}

	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	var m models.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a company by email
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*entities.Company, error) {
	var m models.Company
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByVerificationToken gets a company with an unexpired verification token
func (r *CompanyRepository) GetByVerificationToken(ctx context.Context, token string) (*entities.Company, error) {
	var m models.Company
	err := r.db.WithContext(ctx).
		Where("verification_token = ? AND verification_token_expires > ?", token, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByResetToken gets a company with an unexpired reset token
func (r *CompanyRepository) GetByResetToken(ctx context.Context, token string) (*entities.Company, error) {
	var m models.Company
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expires > ?", token, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// MarkVerified marks the company email as verified and clears the token
func (r *CompanyRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_verified":                true,
		"verification_token":         nil,
		"verification_token_expires": nil,
		"updated_at":                 time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetResetToken stores a password reset token with its expiry
func (r *CompanyRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":         token,
		"reset_token_expires": expires,
		"updated_at":          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the password hash and clears any reset token
func (r *CompanyRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":       passwordHash,
		"reset_token":         nil,
		"reset_token_expires": nil,
		"updated_at":          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ClearExpiredTokens drops verification and reset tokens past their expiry
func (r *CompanyRepository) ClearExpiredTokens(ctx context.Context) (int64, error) {
	now := time.Now()
	var cleared int64

	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("verification_token IS NOT NULL AND verification_token_expires <= ?", now).
		Updates(map[string]interface{}{
			"verification_token":         nil,
			"verification_token_expires": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	cleared += result.RowsAffected

	result = r.db.WithContext(ctx).Model(&models.Company{}).
		Where("reset_token IS NOT NULL AND reset_token_expires <= ?", now).
		Updates(map[string]interface{}{
			"reset_token":         nil,
			"reset_token_expires": nil,
		})
	if result.Error != nil {
		return cleared, result.Error
	}
	cleared += result.RowsAffected

	return cleared, nil
}

func (r *CompanyRepository) toEntity(m *models.Company) *entities.Company {
	return &entities.Company{
		ID:                       m.ID,
		Name:                     m.Name,
		Email:                    m.Email,
		PasswordHash:             m.PasswordHash,
		IsVerified:               m.IsVerified,
		VerificationToken:        null.StringFromPtr(m.VerificationToken),
		VerificationTokenExpires: null.TimeFromPtr(m.VerificationTokenExpires),
		ResetToken:               null.StringFromPtr(m.ResetToken),
		ResetTokenExpires:        null.TimeFromPtr(m.ResetTokenExpires),
		SubscriptionStatus:       entities.SubscriptionStatus(m.SubscriptionStatus),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}
