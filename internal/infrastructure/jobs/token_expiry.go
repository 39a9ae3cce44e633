package jobs

import (
	"context"
	"log"
	"time"

	"verifyme.backend/internal/domain/repositories"
)

// TokenExpiryJob clears stale email verification and password reset tokens
type TokenExpiryJob struct {
	repo     repositories.CompanyRepository
	interval time.Duration
	stop     chan struct{}
}

func NewTokenExpiryJob(repo repositories.CompanyRepository) *TokenExpiryJob {
	return &TokenExpiryJob{
		repo:     repo,
		interval: 10 * time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *TokenExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting token expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Token expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Token expiry job stopped")
			return
		case <-ticker.C:
			j.clearExpiredTokens(ctx)
		}
	}
}

func (j *TokenExpiryJob) Stop() {
	close(j.stop)
}

func (j *TokenExpiryJob) clearExpiredTokens(ctx context.Context) {
	cleared, err := j.repo.ClearExpiredTokens(ctx)
	if err != nil {
		log.Printf("❌ Error clearing expired tokens: %v", err)
		return
	}

	if cleared > 0 {
		log.Printf("✅ Cleared %d expired tokens", cleared)
	}
}
