package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ProviderID uint     `gorm:"index:idx_provider_slot" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	SubjectID string `gorm:"size:64;index" json:"subject_id"`

	// SlotDate keeps the wire form of the calendar day ("2025-1-2"),
	// SlotLabel the time-of-day label ("10:00 AM").
	SlotDate  string `gorm:"size:12;index:idx_provider_slot" json:"slot_date"`
	SlotLabel string `gorm:"size:12" json:"slot_label"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Version int `gorm:"default:1" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
