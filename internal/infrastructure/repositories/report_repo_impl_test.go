package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"verifyme.backend/internal/domain/entities"
	"verifyme.backend/internal/infrastructure/models"
	"verifyme.backend/pkg/crypto"
)

func newTestSecretbox(t *testing.T) *crypto.Secretbox {
	t.Helper()
	box, err := crypto.NewSecretbox("test-data-key")
	require.NoError(t, err)
	return box
}

func TestReportRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createReportTable(t, db)
	repo := NewReportRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Report{
		ReporterName:    "Alice",
		ReportedChannel: "@fake-acme",
		Reason:          "impersonation",
	}))
	require.NoError(t, repo.Create(ctx, &entities.Report{
		ReporterName:    "Bob",
		ReportedChannel: "acme-support.net",
		Reason:          "phishing site",
	}))

	reports, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.NotEqual(t, reports[0].ID, reports[1].ID)
}

func TestAttemptRepository_RecordAndStats(t *testing.T) {
	db := newTestDB(t)
	createVerificationAttemptTable(t, db)
	repo := NewAttemptRepository(db, newTestSecretbox(t))
	ctx := context.Background()
	now := time.Now()

	attempts := []*entities.VerificationAttempt{
		{InputValue: "@acmecorp", Verified: true, CreatedAt: now.Add(-time.Hour)},
		{InputValue: "@unknown", Verified: false, CreatedAt: now.Add(-2 * time.Hour)},
		{InputValue: "acme.com", Verified: true, CreatedAt: now.AddDate(0, 0, -3)},
		{InputValue: "old.example", Verified: false, CreatedAt: now.AddDate(0, -2, 0)},
	}
	for _, a := range attempts {
		require.NoError(t, repo.Record(ctx, a))
	}

	stats, err := repo.Stats(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 4, stats.TotalVerifications)
	require.EqualValues(t, 2, stats.VerifiedCount)
	require.EqualValues(t, 3, stats.Month)
	require.GreaterOrEqual(t, stats.Week, int64(2))
	require.LessOrEqual(t, stats.Today, stats.Week)
}

func TestAttemptRepository_EncryptsInputValueAtRest(t *testing.T) {
	db := newTestDB(t)
	createVerificationAttemptTable(t, db)
	box := newTestSecretbox(t)
	repo := NewAttemptRepository(db, box)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, &entities.VerificationAttempt{
		InputValue: "@acmecorp",
		Verified:   true,
	}))

	var row models.VerificationAttempt
	require.NoError(t, db.First(&row).Error)
	require.NotEqual(t, "@acmecorp", row.InputValue)

	plain, err := box.Decrypt(row.InputValue)
	require.NoError(t, err)
	require.Equal(t, "@acmecorp", plain)
}
