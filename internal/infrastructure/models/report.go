package models

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ReporterName    string    `gorm:"type:varchar(255);not null"`
	ReportedChannel string    `gorm:"type:varchar(512);not null;index"`
	Reason          string    `gorm:"type:text;not null"`
	CreatedAt       time.Time
}

type VerificationAttempt struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	InputValue string    `gorm:"type:text;not null"` // secretbox payload, longer than the raw value
	Verified   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index"`
}
