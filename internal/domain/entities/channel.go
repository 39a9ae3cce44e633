package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ChannelType represents supported communication channel types
type ChannelType string

const (
	ChannelTypeX        ChannelType = "x"
	ChannelTypeTelegram ChannelType = "telegram"
	ChannelTypeWebsite  ChannelType = "website"
	ChannelTypeEmail    ChannelType = "email"
	ChannelTypePhone    ChannelType = "phone"
)

// ValidChannelType reports whether t is one of the supported channel types.
func ValidChannelType(t ChannelType) bool {
	switch t {
	case ChannelTypeX, ChannelTypeTelegram, ChannelTypeWebsite, ChannelTypeEmail, ChannelTypePhone:
		return true
	}
	return false
}

// ChannelStatus represents the verification state of a channel
type ChannelStatus string

const (
	ChannelStatusUnverified ChannelStatus = "unverified"
	ChannelStatusVerified   ChannelStatus = "verified"
	ChannelStatusFailed     ChannelStatus = "failed"
)

// EmployeeStatus represents verification state of an employee association
type EmployeeStatus string

const (
	EmployeeStatusPending  EmployeeStatus = "pending"
	EmployeeStatusVerified EmployeeStatus = "verified"
	EmployeeStatusRejected EmployeeStatus = "rejected"
)

// EmployeeInfo holds the employee association for employee channels
type EmployeeInfo struct {
	Name       string         `json:"name"`
	Role       string         `json:"role"`
	Department null.String    `json:"department,omitempty"`
	Status     EmployeeStatus `json:"status"`
}

// Channel represents a registered point of contact claimed by a company.
// Invariant: Status == verified iff VerifiedAt is set. A verified channel
// never transitions back; re-verification requires remove and re-create.
type Channel struct {
	ID                uuid.UUID     `json:"id"`
	CompanyID         uuid.UUID     `json:"companyId"`
	Type              ChannelType   `json:"type"`
	Value             string        `json:"value"`
	Description       null.String   `json:"description,omitempty"`
	Status            ChannelStatus `json:"status"`
	VerifiedAt        null.Time     `json:"verifiedAt,omitempty"`
	IsEmployeeChannel bool          `json:"isEmployeeChannel"`
	EmployeeInfo      *EmployeeInfo `json:"employeeInfo,omitempty"`
	Metadata          null.JSON     `json:"metadata,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	DeletedAt         null.Time     `json:"-"`
}

// CreateChannelInput represents input for registering a single channel
type CreateChannelInput struct {
	Type              ChannelType   `json:"type" binding:"required"`
	Value             string        `json:"value" binding:"required"`
	Description       string        `json:"description,omitempty"`
	IsEmployeeChannel bool          `json:"isEmployeeChannel,omitempty"`
	EmployeeInfo      *EmployeeInfo `json:"employeeInfo,omitempty"`
}

// ImportRecord represents one candidate row of a bulk import
type ImportRecord struct {
	Channel           string        `json:"channel"`
	Type              ChannelType   `json:"type"`
	Description       string        `json:"description,omitempty"`
	IsEmployeeChannel bool          `json:"isEmployeeChannel,omitempty"`
	EmployeeInfo      *EmployeeInfo `json:"employeeInfo,omitempty"`
}
