package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"verifyme.backend/internal/domain/entities"
	"verifyme.backend/internal/infrastructure/models"
	"verifyme.backend/pkg/crypto"
)

// ReportRepository implements abuse report data operations
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create stores a new report
func (r *ReportRepository) Create(ctx context.Context, report *entities.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()

	m := &models.Report{
		ID:              report.ID,
		ReporterName:    report.ReporterName,
		ReportedChannel: report.ReportedChannel,
		Reason:          report.Reason,
		CreatedAt:       report.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns all reports, newest first
func (r *ReportRepository) List(ctx context.Context) ([]*entities.Report, error) {
	var ms []models.Report
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	var reports []*entities.Report
	for _, m := range ms {
		reports = append(reports, &entities.Report{
			ID:              m.ID,
			ReporterName:    m.ReporterName,
			ReportedChannel: m.ReportedChannel,
			Reason:          m.Reason,
			CreatedAt:       m.CreatedAt,
		})
	}
	return reports, nil
}

// AttemptRepository implements verification attempt audit operations.
// Queried input values are end-user data, so they are sealed with the
// secretbox before hitting the attempts table.
type AttemptRepository struct {
	db  *gorm.DB
	box *crypto.Secretbox
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *gorm.DB, box *crypto.Secretbox) *AttemptRepository {
	return &AttemptRepository{db: db, box: box}
}

// Record stores one verification attempt
func (r *AttemptRepository) Record(ctx context.Context, attempt *entities.VerificationAttempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	sealed, err := r.box.Encrypt(attempt.InputValue)
	if err != nil {
		return err
	}
	m := &models.VerificationAttempt{
		ID:         attempt.ID,
		InputValue: sealed,
		Verified:   attempt.Verified,
		CreatedAt:  attempt.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Stats aggregates attempt counts for the analytics endpoint
func (r *AttemptRepository) Stats(ctx context.Context, now time.Time) (*entities.AnalyticsStats, error) {
	stats := &entities.AnalyticsStats{}
	base := r.db.WithContext(ctx).Model(&models.VerificationAttempt{})

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalVerifications).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("verified = ?", true).Count(&stats.VerifiedCount).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", dayStart).Count(&stats.Today).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.Week).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", now.AddDate(0, -1, 0)).Count(&stats.Month).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
