package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"verifyme.backend/internal/domain/entities"
)

// CompanyRepository defines company account data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	GetByEmail(ctx context.Context, email string) (*entities.Company, error)
	GetByVerificationToken(ctx context.Context, token string) (*entities.Company, error)
	GetByResetToken(ctx context.Context, token string) (*entities.Company, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ClearExpiredTokens(ctx context.Context) (int64, error)
}
