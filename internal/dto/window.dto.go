package dto

import "time"

type WindowSlotDTO struct {
	Label     string    `json:"label"`
	Instant   time.Time `json:"instant"`
	Available bool      `json:"available"`
}

type WindowDayDTO struct {
	Date  string          `json:"date"`
	Slots []WindowSlotDTO `json:"slots"`
}
