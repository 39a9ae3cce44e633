package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Channel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CompanyID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Type               string    `gorm:"type:varchar(50);not null"`
	Value              string    `gorm:"type:varchar(512);not null;index"`
	Description        *string   `gorm:"type:text"`
	Status             string    `gorm:"type:varchar(50);not null;default:'unverified';index"`
	VerifiedAt         *time.Time
	IsEmployeeChannel  bool    `gorm:"not null;default:false"`
	EmployeeName       *string `gorm:"type:varchar(255)"`
	EmployeeRole       *string `gorm:"type:varchar(255)"`
	EmployeeDepartment *string `gorm:"type:varchar(255)"`
	EmployeeStatus     *string `gorm:"type:varchar(50)"`
	Metadata           string  `gorm:"type:jsonb;default:'{}'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	// Associations
	Company Company `gorm:"foreignKey:CompanyID"`
}
