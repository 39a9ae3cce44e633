package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"verifyme.backend/internal/domain/entities"
)

type stubCompanyRepo struct {
	clearCalls int64
}

func (s *stubCompanyRepo) Create(ctx context.Context, company *entities.Company) error { return nil }
func (s *stubCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return nil, nil
}
func (s *stubCompanyRepo) GetByEmail(ctx context.Context, email string) (*entities.Company, error) {
	return nil, nil
}
func (s *stubCompanyRepo) GetByVerificationToken(ctx context.Context, token string) (*entities.Company, error) {
	return nil, nil
}
func (s *stubCompanyRepo) GetByResetToken(ctx context.Context, token string) (*entities.Company, error) {
	return nil, nil
}
func (s *stubCompanyRepo) MarkVerified(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubCompanyRepo) SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	return nil
}
func (s *stubCompanyRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return nil
}
func (s *stubCompanyRepo) ClearExpiredTokens(ctx context.Context) (int64, error) {
	atomic.AddInt64(&s.clearCalls, 1)
	return 1, nil
}

func TestTokenExpiryJob_ClearsOnTick(t *testing.T) {
	repo := &stubCompanyRepo{}
	job := &TokenExpiryJob{
		repo:     repo,
		interval: 10 * time.Millisecond,
		stop:     make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&repo.clearCalls) >= 2
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	<-done
}

func TestTokenExpiryJob_StopsOnContextCancel(t *testing.T) {
	repo := &stubCompanyRepo{}
	job := NewTokenExpiryJob(repo)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after context cancel")
	}
}
