package entities

import (
	"time"

	"github.com/google/uuid"
)

// Report represents a user-submitted report of a suspicious handle
type Report struct {
	ID              uuid.UUID `json:"id"`
	ReporterName    string    `json:"reporterName"`
	ReportedChannel string    `json:"reportedChannel"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateReportInput represents input for submitting a report
type CreateReportInput struct {
	ReporterName    string `json:"reporter_name" binding:"required"`
	ReportedChannel string `json:"reported_channel" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
}
