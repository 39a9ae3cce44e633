package usecases

import (
	"context"
	"strings"

	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/domain/repositories"
)

// ReportUsecase handles user-submitted reports of suspicious handles
type ReportUsecase struct {
	reportRepo repositories.ReportRepository
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(reportRepo repositories.ReportRepository) *ReportUsecase {
	return &ReportUsecase{reportRepo: reportRepo}
}

// Create stores a report. All three fields are required.
func (u *ReportUsecase) Create(ctx context.Context, input *entities.CreateReportInput) (*entities.Report, error) {
	if strings.TrimSpace(input.ReporterName) == "" ||
		strings.TrimSpace(input.ReportedChannel) == "" ||
		strings.TrimSpace(input.Reason) == "" {
		return nil, domainerrors.NewError("reporter_name, reported_channel and reason are required", domainerrors.ErrInvalidInput)
	}

	report := &entities.Report{
		ReporterName:    strings.TrimSpace(input.ReporterName),
		ReportedChannel: strings.TrimSpace(input.ReportedChannel),
		Reason:          strings.TrimSpace(input.Reason),
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// List returns all reports, newest first per the repository ordering
func (u *ReportUsecase) List(ctx context.Context) ([]*entities.Report, error) {
	return u.reportRepo.List(ctx)
}
