package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/infrastructure/models"
)

// ChannelRepository implements channel record data operations
type ChannelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create creates a new channel record
func (r *ChannelRepository) Create(ctx context.Context, channel *entities.Channel) error {
	m := r.toModel(channel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	channel.CreatedAt = m.CreatedAt
	channel.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateBatch creates all records in a single transaction.
// Either all records are written or none.
func (r *ChannelRepository) CreateBatch(ctx context.Context, channels []*entities.Channel) error {
	if len(channels) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, channel := range channels {
			if err := tx.Create(r.toModel(channel)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets a channel by ID
func (r *ChannelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	var m models.Channel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByCompany returns the company's channels in insertion order
func (r *ChannelRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entities.Channel, error) {
	var ms []models.Channel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListVerified returns all verified channels in insertion order
func (r *ChannelRepository) ListVerified(ctx context.Context) ([]*entities.Channel, error) {
	var ms []models.Channel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.ChannelStatusVerified)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListUnverifiedByIDs returns the caller-owned unverified subset of ids
func (r *ChannelRepository) ListUnverifiedByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entities.Channel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ms []models.Channel
	err := r.db.WithContext(ctx).
		Where("id IN ? AND company_id = ? AND status = ?", ids, companyID, string(entities.ChannelStatusUnverified)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// UpdateStatus updates a channel's verification status. The verified_at
// column is set iff the new status is verified, keeping the coupling
// invariant at the storage layer too.
func (r *ChannelRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ChannelStatus, verifiedAt *time.Time, metadata []byte) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.ChannelStatusVerified {
		if verifiedAt == nil {
			now := time.Now()
			verifiedAt = &now
		}
		updates["verified_at"] = *verifiedAt
	} else {
		updates["verified_at"] = nil
	}
	if metadata != nil {
		updates["metadata"] = string(metadata)
	}

	result := r.db.WithContext(ctx).Model(&models.Channel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a channel owned by companyID. Deleting an id that does
// not exist (or is not owned by the caller) is a no-op.
func (r *ChannelRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.Channel{}).Error
}

func (r *ChannelRepository) toModel(channel *entities.Channel) *models.Channel {
	if channel.ID == uuid.Nil {
		channel.ID = uuid.New()
	}
	now := time.Now()
	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = now
	}
	channel.UpdatedAt = now

	m := &models.Channel{
		ID:                channel.ID,
		CompanyID:         channel.CompanyID,
		Type:              string(channel.Type),
		Value:             channel.Value,
		Description:       channel.Description.Ptr(),
		Status:            string(channel.Status),
		VerifiedAt:        channel.VerifiedAt.Ptr(),
		IsEmployeeChannel: channel.IsEmployeeChannel,
		Metadata:          "{}",
		CreatedAt:         channel.CreatedAt,
		UpdatedAt:         channel.UpdatedAt,
	}
	if channel.Metadata.Valid {
		m.Metadata = string(channel.Metadata.JSON)
	}
	if channel.EmployeeInfo != nil {
		status := string(channel.EmployeeInfo.Status)
		m.EmployeeName = &channel.EmployeeInfo.Name
		m.EmployeeRole = &channel.EmployeeInfo.Role
		m.EmployeeDepartment = channel.EmployeeInfo.Department.Ptr()
		m.EmployeeStatus = &status
	}
	return m
}

func (r *ChannelRepository) toEntity(m *models.Channel) *entities.Channel {
	channel := &entities.Channel{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		Type:              entities.ChannelType(m.Type),
		Value:             m.Value,
		Description:       null.StringFromPtr(m.Description),
		Status:            entities.ChannelStatus(m.Status),
		VerifiedAt:        null.TimeFromPtr(m.VerifiedAt),
		IsEmployeeChannel: m.IsEmployeeChannel,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Metadata != "" && m.Metadata != "{}" {
		channel.Metadata = null.JSONFrom([]byte(m.Metadata))
	}
	if m.IsEmployeeChannel && m.EmployeeName != nil && m.EmployeeRole != nil {
		info := &entities.EmployeeInfo{
			Name:       *m.EmployeeName,
			Role:       *m.EmployeeRole,
			Department: null.StringFromPtr(m.EmployeeDepartment),
			Status:     entities.EmployeeStatusPending,
		}
		if m.EmployeeStatus != nil {
			info.Status = entities.EmployeeStatus(*m.EmployeeStatus)
		}
		channel.EmployeeInfo = info
	}
	return channel
}

func (r *ChannelRepository) toEntities(ms []models.Channel) []*entities.Channel {
	var channels []*entities.Channel
	for _, m := range ms {
		model := m
		channels = append(channels, r.toEntity(&model))
	}
	return channels
}
