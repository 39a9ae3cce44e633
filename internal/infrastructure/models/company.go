package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name                     string    `gorm:"type:varchar(255);not null"`
	Email                    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash             string    `gorm:"type:varchar(255);not null"`
	IsVerified               bool      `gorm:"not null;default:false"`
	VerificationToken        *string   `gorm:"type:varchar(255);index"`
	VerificationTokenExpires *time.Time
	ResetToken               *string `gorm:"type:varchar(255);index"`
	ResetTokenExpires        *time.Time
	SubscriptionStatus       string `gorm:"type:varchar(50);not null;default:'trial'"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}
