package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/models"
)

func TestMemoryLedger_AppendGet(t *testing.T) {
	r := NewMemoryLedger()
	ctx := context.Background()

	ap := &models.Appointment{ID: "a", ProviderID: 1, SubjectID: "s1", SlotDate: "2026-3-10", SlotLabel: "10:00 AM", Status: "confirmed"}
	require.NoError(t, r.Append(ctx, ap))
	assert.Equal(t, 1, ap.Version)

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", got.SlotLabel)

	_, err = r.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryLedger_VersionedUpdate(t *testing.T) {
	r := NewMemoryLedger()
	ctx := context.Background()

	ap := &models.Appointment{ID: "a", ProviderID: 1, SlotDate: "2026-3-10", SlotLabel: "10:00 AM", Status: "confirmed"}
	require.NoError(t, r.Append(ctx, ap))

	ap.Status = "cancelled"
	require.NoError(t, r.Update(ctx, ap, 1))
	assert.Equal(t, 2, ap.Version)

	// a stale version must not win
	stale := &models.Appointment{ID: "a", Status: "completed"}
	err := r.Update(ctx, stale, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
}

func TestMemoryLedger_Listings(t *testing.T) {
	r := NewMemoryLedger()
	ctx := context.Background()

	seed := []models.Appointment{
		{ID: "a", ProviderID: 1, SubjectID: "s1", SlotDate: "2026-3-10", SlotLabel: "10:00 AM", Status: "confirmed"},
		{ID: "b", ProviderID: 1, SubjectID: "s2", SlotDate: "2026-3-10", SlotLabel: "10:30 AM", Status: "cancelled"},
		{ID: "c", ProviderID: 2, SubjectID: "s1", SlotDate: "2026-3-10", SlotLabel: "10:00 AM", Status: "confirmed"},
		{ID: "d", ProviderID: 1, SubjectID: "s1", SlotDate: "2026-3-11", SlotLabel: "10:00 AM", Status: "confirmed"},
	}
	for i := range seed {
		require.NoError(t, r.Append(ctx, &seed[i]))
	}

	byDate, err := r.ListByProviderDate(ctx, 1, "2026-3-10")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "a", byDate[0].ID)

	bySubject, err := r.ListBySubject(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, bySubject, 3)
	// newest first
	assert.Equal(t, "d", bySubject[0].ID)

	occupied, err := r.ListOccupied(ctx)
	require.NoError(t, err)
	assert.Len(t, occupied, 3)
}
