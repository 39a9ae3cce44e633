package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SubscriptionStatus represents a company's subscription tier
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Company represents a registered company account
type Company struct {
	ID                       uuid.UUID          `json:"id"`
	Name                     string             `json:"name"`
	Email                    string             `json:"email"`
	PasswordHash             string             `json:"-"`
	IsVerified               bool               `json:"isVerified"`
	VerificationToken        null.String        `json:"-"`
	VerificationTokenExpires null.Time          `json:"-"`
	ResetToken               null.String        `json:"-"`
	ResetTokenExpires        null.Time          `json:"-"`
	SubscriptionStatus       SubscriptionStatus `json:"subscriptionStatus"`
	CreatedAt                time.Time          `json:"createdAt"`
	UpdatedAt                time.Time          `json:"updatedAt"`
	DeletedAt                null.Time          `json:"-"`
}

// RegisterInput represents input for company registration
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for company login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordInput represents input for completing a password reset
type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Company      *Company `json:"company"`
}
