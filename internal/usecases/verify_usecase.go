package usecases

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/domain/repositories"
	"verifyme.backend/pkg/logger"
)

// VerifyUsecase answers public "is this channel legit" queries
type VerifyUsecase struct {
	channelRepo repositories.ChannelRepository
	companyRepo repositories.CompanyRepository
	attemptRepo repositories.AttemptRepository
}

// NewVerifyUsecase creates a new verify usecase
func NewVerifyUsecase(
	channelRepo repositories.ChannelRepository,
	companyRepo repositories.CompanyRepository,
	attemptRepo repositories.AttemptRepository,
) *VerifyUsecase {
	return &VerifyUsecase{
		channelRepo: channelRepo,
		companyRepo: companyRepo,
		attemptRepo: attemptRepo,
	}
}

// Verify scans verified channels for the queried value. Matching is
// case-insensitive and lenient: an exact match wins, otherwise a
// containment match in either direction. The first verified channel in
// insertion order decides; nothing is mutated.
func (u *VerifyUsecase) Verify(ctx context.Context, value string) (*entities.VerifyResult, error) {
	query := strings.ToLower(strings.TrimSpace(value))
	if query == "" {
		return nil, domainerrors.NewError("input_value is required", domainerrors.ErrInvalidInput)
	}

	channels, err := u.channelRepo.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	result := &entities.VerifyResult{Verified: false}
	for _, ch := range channels {
		stored := strings.ToLower(ch.Value)
		var confidence entities.MatchConfidence
		switch {
		case stored == query:
			confidence = entities.MatchExact
		case strings.Contains(stored, query) || strings.Contains(query, stored):
			confidence = entities.MatchPartial
		default:
			continue
		}

		company, err := u.companyRepo.GetByID(ctx, ch.CompanyID)
		if err != nil {
			return nil, err
		}
		result = &entities.VerifyResult{
			Verified:   true,
			Company:    company.Name,
			Confidence: confidence,
		}
		break
	}

	u.recordAttempt(ctx, query, result.Verified)

	outcome := "miss"
	if result.Verified {
		outcome = "hit"
	}
	verifyAttempts.WithLabelValues(outcome).Inc()
	logger.Info(ctx, "verification attempt",
		zap.String("value", query),
		zap.Bool("verified", result.Verified),
		zap.String("confidence", string(result.Confidence)))

	return result, nil
}

// Analytics aggregates recorded verification attempts
func (u *VerifyUsecase) Analytics(ctx context.Context) (*entities.AnalyticsStats, error) {
	return u.attemptRepo.Stats(ctx, time.Now())
}

func (u *VerifyUsecase) recordAttempt(ctx context.Context, value string, verified bool) {
	attempt := &entities.VerificationAttempt{
		InputValue: value,
		Verified:   verified,
	}
	if err := u.attemptRepo.Record(ctx, attempt); err != nil {
		// Audit failures must not break the public answer
		logger.Warn(ctx, "failed to record verification attempt", zap.Error(err))
	}
}
