package usecases

import (
	"context"
	"crypto/sha256"

	"verifyme.backend/internal/domain/entities"
)

// OwnershipChecker probes whether a channel value is actually controlled
// by the company that claims it. Implementations are expected to block
// until they have an answer or ctx is done.
type OwnershipChecker interface {
	Check(ctx context.Context, channelType entities.ChannelType, value string) (bool, error)
}

// StubChecker is a deterministic placeholder used until per-type probes
// (DNS TXT records, confirmation emails, bot messages) are built out.
// The outcome is a pure function of the channel value, so repeated runs
// agree and tests are reproducible.
type StubChecker struct{}

func NewStubChecker() *StubChecker {
	return &StubChecker{}
}

func (c *StubChecker) Check(ctx context.Context, channelType entities.ChannelType, value string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	sum := sha256.Sum256([]byte(string(channelType) + ":" + value))
	// Pass roughly 4 out of 5 values, mirroring observed probe success rates.
	return sum[0]%5 != 0, nil
}
