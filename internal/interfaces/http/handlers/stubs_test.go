package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/interfaces/http/middleware"
	"verifyme.backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("production")
}

// withCompany injects an authenticated company id, standing in for the
// auth middleware.
func withCompany(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CompanyIDKey, id)
		c.Next()
	}
}

type channelRepoStub struct {
	channels []*entities.Channel
}

func (s *channelRepoStub) Create(_ context.Context, channel *entities.Channel) error {
	if channel.ID == uuid.Nil {
		channel.ID = uuid.New()
	}
	channel.CreatedAt = time.Now()
	s.channels = append(s.channels, channel)
	return nil
}

func (s *channelRepoStub) CreateBatch(ctx context.Context, channels []*entities.Channel) error {
	for _, ch := range channels {
		if err := s.Create(ctx, ch); err != nil {
			return err
		}
	}
	return nil
}

func (s *channelRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Channel, error) {
	for _, ch := range s.channels {
		if ch.ID == id {
			return ch, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *channelRepoStub) ListByCompany(_ context.Context, companyID uuid.UUID) ([]*entities.Channel, error) {
	var out []*entities.Channel
	for _, ch := range s.channels {
		if ch.CompanyID == companyID {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s *channelRepoStub) ListVerified(context.Context) ([]*entities.Channel, error) {
	var out []*entities.Channel
	for _, ch := range s.channels {
		if ch.Status == entities.ChannelStatusVerified {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s *channelRepoStub) ListUnverifiedByIDs(_ context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entities.Channel, error) {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []*entities.Channel
	for _, ch := range s.channels {
		if _, ok := wanted[ch.ID]; ok && ch.CompanyID == companyID && ch.Status == entities.ChannelStatusUnverified {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s *channelRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ChannelStatus, verifiedAt *time.Time, metadata []byte) error {
	for _, ch := range s.channels {
		if ch.ID == id {
			ch.Status = status
			if verifiedAt != nil {
				ch.VerifiedAt = null.TimeFrom(*verifiedAt)
			}
			if metadata != nil {
				ch.Metadata = null.JSONFrom(metadata)
			}
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *channelRepoStub) Delete(_ context.Context, companyID, id uuid.UUID) error {
	for i, ch := range s.channels {
		if ch.ID == id && ch.CompanyID == companyID {
			s.channels = append(s.channels[:i], s.channels[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

type companyRepoStub struct {
	companies map[uuid.UUID]*entities.Company
}

func newCompanyRepoStub() *companyRepoStub {
	return &companyRepoStub{companies: map[uuid.UUID]*entities.Company{}}
}

func (s *companyRepoStub) Create(_ context.Context, company *entities.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	s.companies[company.ID] = company
	return nil
}

func (s *companyRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Company, error) {
	c, ok := s.companies[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return c, nil
}

func (s *companyRepoStub) GetByEmail(_ context.Context, email string) (*entities.Company, error) {
	for _, c := range s.companies {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *companyRepoStub) GetByVerificationToken(_ context.Context, token string) (*entities.Company, error) {
	for _, c := range s.companies {
		if c.VerificationToken.Valid && c.VerificationToken.String == token &&
			c.VerificationTokenExpires.Valid && c.VerificationTokenExpires.Time.After(time.Now()) {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *companyRepoStub) GetByResetToken(_ context.Context, token string) (*entities.Company, error) {
	for _, c := range s.companies {
		if c.ResetToken.Valid && c.ResetToken.String == token &&
			c.ResetTokenExpires.Valid && c.ResetTokenExpires.Time.After(time.Now()) {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *companyRepoStub) MarkVerified(_ context.Context, id uuid.UUID) error {
	c, ok := s.companies[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	c.IsVerified = true
	c.VerificationToken = null.String{}
	c.VerificationTokenExpires = null.Time{}
	return nil
}

func (s *companyRepoStub) SetResetToken(_ context.Context, id uuid.UUID, token string, expires time.Time) error {
	c, ok := s.companies[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	c.ResetToken = null.StringFrom(token)
	c.ResetTokenExpires = null.TimeFrom(expires)
	return nil
}

func (s *companyRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	c, ok := s.companies[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	c.PasswordHash = passwordHash
	c.ResetToken = null.String{}
	c.ResetTokenExpires = null.Time{}
	return nil
}

func (s *companyRepoStub) ClearExpiredTokens(context.Context) (int64, error) {
	return 0, nil
}

type reportRepoStub struct {
	reports []*entities.Report
}

func (s *reportRepoStub) Create(_ context.Context, report *entities.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	s.reports = append(s.reports, report)
	return nil
}

func (s *reportRepoStub) List(context.Context) ([]*entities.Report, error) {
	return s.reports, nil
}

type attemptRepoStub struct {
	attempts []*entities.VerificationAttempt
}

func (s *attemptRepoStub) Record(_ context.Context, attempt *entities.VerificationAttempt) error {
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *attemptRepoStub) Stats(context.Context, time.Time) (*entities.AnalyticsStats, error) {
	stats := &entities.AnalyticsStats{TotalVerifications: int64(len(s.attempts))}
	for _, a := range s.attempts {
		if a.Verified {
			stats.VerifiedCount++
		}
	}
	return stats, nil
}

type mailerStub struct {
	verificationMails int
	resetMails        int
	lastToken         string
}

func (s *mailerStub) SendVerificationEmail(_, token string) error {
	s.verificationMails++
	s.lastToken = token
	return nil
}

func (s *mailerStub) SendPasswordResetEmail(_, token string) error {
	s.resetMails++
	s.lastToken = token
	return nil
}

// checkerStub verifies any value in the allow set and fails the rest
type checkerStub struct {
	allow map[string]bool
}

func (s *checkerStub) Check(_ context.Context, _ entities.ChannelType, value string) (bool, error) {
	return s.allow[value], nil
}
