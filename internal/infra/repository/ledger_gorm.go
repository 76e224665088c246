package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/models"
)

// GormLedger implements schedule.Ledger and schedule.Providers on
// Postgres. Appointments are append-mostly: Append and the versioned
// Update are the only writes, rows are never deleted.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *GormLedger) GetProvider(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var prov models.Provider
	if err := r.db.WithContext(ctx).
		Where("active = true").
		First(&prov, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, err
	}
	return &prov, nil
}

func (r *GormLedger) ListProviders(
	ctx context.Context,
) ([]models.Provider, error) {

	var provs []models.Provider
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&provs).Error; err != nil {
		return nil, err
	}
	return provs, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *GormLedger) Append(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *GormLedger) Get(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

// Update applies a status transition guarded by the record's version.
// A zero-row update means another writer got there first.
func (r *GormLedger) Update(
	ctx context.Context,
	ap *models.Appointment,
	expectedVersion int,
) error {

	ap.Version = expectedVersion + 1

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND version = ?", ap.ID, expectedVersion).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"version":      ap.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *GormLedger) ListByProviderDate(
	ctx context.Context,
	providerID uint,
	slotDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND slot_date = ?", providerID, slotDate).
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *GormLedger) ListBySubject(
	ctx context.Context,
	subjectID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *GormLedger) ListOccupied(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.StatusCancelled)).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
