package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/domain/repositories"
	"verifyme.backend/pkg/normalize"
)

// ChannelUsecase handles channel registry business logic
type ChannelUsecase struct {
	channelRepo repositories.ChannelRepository
}

// NewChannelUsecase creates a new channel usecase
func NewChannelUsecase(channelRepo repositories.ChannelRepository) *ChannelUsecase {
	return &ChannelUsecase{channelRepo: channelRepo}
}

func validateChannelInput(channelType entities.ChannelType, value string, isEmployee bool, info *entities.EmployeeInfo) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.NewError("channel value must not be empty", domainerrors.ErrInvalidInput)
	}
	if !entities.ValidChannelType(channelType) {
		return domainerrors.NewError("unsupported channel type: "+string(channelType), domainerrors.ErrUnsupportedType)
	}
	if isEmployee {
		if info == nil || strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Role) == "" {
			return domainerrors.NewError("employee channels require employee name and role", domainerrors.ErrInvalidInput)
		}
	}
	return nil
}

// Create registers a new channel for the company. Values are normalized
// before storage so the matcher compares like with like.
func (u *ChannelUsecase) Create(ctx context.Context, companyID uuid.UUID, input *entities.CreateChannelInput) (*entities.Channel, error) {
	if err := validateChannelInput(input.Type, input.Value, input.IsEmployeeChannel, input.EmployeeInfo); err != nil {
		return nil, err
	}

	channel := &entities.Channel{
		CompanyID:         companyID,
		Type:              input.Type,
		Value:             normalize.Value(string(input.Type), input.Value),
		Status:            entities.ChannelStatusUnverified,
		IsEmployeeChannel: input.IsEmployeeChannel,
	}
	if input.Description != "" {
		channel.Description = null.StringFrom(input.Description)
	}
	if input.IsEmployeeChannel {
		info := *input.EmployeeInfo
		if info.Status == "" {
			info.Status = entities.EmployeeStatusPending
		}
		channel.EmployeeInfo = &info
	}

	if err := u.channelRepo.Create(ctx, channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// ListByCompany returns the company's channels in insertion order
func (u *ChannelUsecase) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entities.Channel, error) {
	return u.channelRepo.ListByCompany(ctx, companyID)
}

// Remove deletes a channel owned by the company. Removing a channel that
// does not exist, or belongs to someone else, is a no-op.
func (u *ChannelUsecase) Remove(ctx context.Context, companyID, channelID uuid.UUID) error {
	err := u.channelRepo.Delete(ctx, companyID, channelID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil
	}
	return err
}

// UpdateStatus transitions a channel's verification status. Verified is
// terminal: any attempt to move a verified channel elsewhere fails.
func (u *ChannelUsecase) UpdateStatus(ctx context.Context, companyID, channelID uuid.UUID, status entities.ChannelStatus, metadata []byte) (*entities.Channel, error) {
	channel, err := u.channelRepo.GetByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel.CompanyID != companyID {
		return nil, domainerrors.ErrNotFound
	}
	// Verified and failed are both terminal. Re-verification of a failed
	// channel requires removing and re-creating it.
	terminal := channel.Status == entities.ChannelStatusVerified || channel.Status == entities.ChannelStatusFailed
	if terminal && status != channel.Status {
		return nil, domainerrors.ErrVerifiedImmutable
	}

	var verifiedAt *time.Time
	if status == entities.ChannelStatusVerified {
		now := time.Now()
		verifiedAt = &now
	}
	if err := u.channelRepo.UpdateStatus(ctx, channelID, status, verifiedAt, metadata); err != nil {
		return nil, err
	}

	return u.channelRepo.GetByID(ctx, channelID)
}
