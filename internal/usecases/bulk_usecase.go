package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/domain/repositories"
	"verifyme.backend/pkg/logger"
	"verifyme.backend/pkg/normalize"
)

// BulkUsecase handles the bulk import and verification pipeline
type BulkUsecase struct {
	channelRepo    repositories.ChannelRepository
	checker        OwnershipChecker
	workerCount    int
	attemptTimeout time.Duration
}

// NewBulkUsecase creates a new bulk usecase
func NewBulkUsecase(
	channelRepo repositories.ChannelRepository,
	checker OwnershipChecker,
	workerCount int,
	attemptTimeout time.Duration,
) *BulkUsecase {
	if workerCount < 1 {
		workerCount = 1
	}
	return &BulkUsecase{
		channelRepo:    channelRepo,
		checker:        checker,
		workerCount:    workerCount,
		attemptTimeout: attemptTimeout,
	}
}

// ImportBatch validates and stores a batch of imported channel records.
// Validation is all-or-nothing: one bad record rejects the whole batch
// before anything is written.
func (u *BulkUsecase) ImportBatch(ctx context.Context, companyID uuid.UUID, records []*entities.ImportRecord) ([]*entities.Channel, error) {
	if len(records) == 0 {
		return nil, domainerrors.NewError("no records to import", domainerrors.ErrInvalidInput)
	}

	for i, rec := range records {
		if err := validateChannelInput(rec.Type, rec.Channel, rec.IsEmployeeChannel, rec.EmployeeInfo); err != nil {
			bulkRecords.WithLabelValues("import", "rejected").Add(float64(len(records)))
			return nil, domainerrors.NewError(fmt.Sprintf("record %d: %s", i, err.Error()), domainerrors.ErrInvalidInput)
		}
	}

	uploadedAt := time.Now().UTC().Format(time.RFC3339)
	channels := make([]*entities.Channel, 0, len(records))
	for _, rec := range records {
		meta, _ := json.Marshal(map[string]string{
			"source":     "csv_upload",
			"uploadedAt": uploadedAt,
		})
		channel := &entities.Channel{
			CompanyID:         companyID,
			Type:              rec.Type,
			Value:             normalize.Value(string(rec.Type), rec.Channel),
			Status:            entities.ChannelStatusUnverified,
			IsEmployeeChannel: rec.IsEmployeeChannel,
			Metadata:          null.JSONFrom(meta),
		}
		if rec.Description != "" {
			channel.Description = null.StringFrom(rec.Description)
		}
		if rec.IsEmployeeChannel {
			info := *rec.EmployeeInfo
			if info.Status == "" {
				info.Status = entities.EmployeeStatusPending
			}
			channel.EmployeeInfo = &info
		}
		channels = append(channels, channel)
	}

	if err := u.channelRepo.CreateBatch(ctx, channels); err != nil {
		bulkRecords.WithLabelValues("import", "failed").Add(float64(len(channels)))
		return nil, err
	}

	bulkRecords.WithLabelValues("import", "created").Add(float64(len(channels)))
	return channels, nil
}

// VerifyBatch runs ownership checks for the given channel ids. Only the
// caller's unverified channels are attempted, each at most once per call,
// fanned out over a bounded worker pool. A check that errors or times out
// marks the channel failed rather than aborting the batch.
func (u *BulkUsecase) VerifyBatch(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entities.Channel, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	candidates, err := u.channelRepo.ListUnverifiedByIDs(ctx, companyID, unique)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domainerrors.NotFound("no verifiable channels among the given ids")
	}

	jobs := make(chan *entities.Channel)
	var wg sync.WaitGroup
	for i := 0; i < u.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ch := range jobs {
				u.attempt(ctx, ch)
			}
		}()
	}
	for _, ch := range candidates {
		jobs <- ch
	}
	close(jobs)
	wg.Wait()

	updated := make([]*entities.Channel, 0, len(candidates))
	for _, ch := range candidates {
		fresh, err := u.channelRepo.GetByID(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
		updated = append(updated, fresh)
	}
	return updated, nil
}

func (u *BulkUsecase) attempt(ctx context.Context, ch *entities.Channel) {
	attemptCtx, cancel := context.WithTimeout(ctx, u.attemptTimeout)
	defer cancel()

	ok, err := u.checker.Check(attemptCtx, ch.Type, ch.Value)

	status := entities.ChannelStatusFailed
	result := "failed"
	switch {
	case err != nil:
		if errors.Is(err, context.DeadlineExceeded) {
			result = "timeout"
		}
		logger.Warn(ctx, "ownership check failed",
			zap.String("channel_id", ch.ID.String()),
			zap.Error(err))
	case ok:
		status = entities.ChannelStatusVerified
		result = "verified"
	}

	meta, _ := json.Marshal(map[string]string{
		"verificationAttemptedAt": time.Now().UTC().Format(time.RFC3339),
		"verificationResult":      result,
	})

	var verifiedAt *time.Time
	if status == entities.ChannelStatusVerified {
		now := time.Now()
		verifiedAt = &now
	}
	if err := u.channelRepo.UpdateStatus(ctx, ch.ID, status, verifiedAt, meta); err != nil {
		logger.Error(ctx, "failed to persist verification outcome",
			zap.String("channel_id", ch.ID.String()),
			zap.Error(err))
		return
	}
	bulkRecords.WithLabelValues("verify", result).Inc()
}
