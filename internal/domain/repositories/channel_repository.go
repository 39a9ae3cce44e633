package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"verifyme.backend/internal/domain/entities"
)

// ChannelRepository defines channel record data operations
type ChannelRepository interface {
	Create(ctx context.Context, channel *entities.Channel) error
	CreateBatch(ctx context.Context, channels []*entities.Channel) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error)
	// ListByCompany returns the company's channels in insertion order.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entities.Channel, error)
	// ListVerified returns all verified channels across companies in
	// insertion order, for the public matcher scan.
	ListVerified(ctx context.Context) ([]*entities.Channel, error)
	// ListUnverifiedByIDs returns the subset of ids that exist, belong to
	// companyID and are still unverified.
	ListUnverifiedByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entities.Channel, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ChannelStatus, verifiedAt *time.Time, metadata []byte) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// ReportRepository defines abuse report data operations
type ReportRepository interface {
	Create(ctx context.Context, report *entities.Report) error
	List(ctx context.Context) ([]*entities.Report, error)
}

// AttemptRepository defines verification attempt audit operations
type AttemptRepository interface {
	Record(ctx context.Context, attempt *entities.VerificationAttempt) error
	Stats(ctx context.Context, now time.Time) (*entities.AnalyticsStats, error)
}
