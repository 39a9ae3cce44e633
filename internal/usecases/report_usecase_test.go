package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/usecases"
)

func TestReportUsecase_Create(t *testing.T) {
	reportRepo := new(MockReportRepository)
	uc := usecases.NewReportUsecase(reportRepo)

	reportRepo.On("Create", context.Background(), mock.MatchedBy(func(r *entities.Report) bool {
		return r.ReporterName == "Jane" && r.ReportedChannel == "@fake_acme" && r.Reason == "impersonation"
	})).Return(nil).Once()

	report, err := uc.Create(context.Background(), &entities.CreateReportInput{
		ReporterName:    " Jane ",
		ReportedChannel: "@fake_acme",
		Reason:          "impersonation",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane", report.ReporterName)
}

func TestReportUsecase_Create_MissingFields(t *testing.T) {
	reportRepo := new(MockReportRepository)
	uc := usecases.NewReportUsecase(reportRepo)

	_, err := uc.Create(context.Background(), &entities.CreateReportInput{
		ReporterName:    "Jane",
		ReportedChannel: "@fake_acme",
		Reason:          "  ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
