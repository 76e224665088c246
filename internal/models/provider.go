package models

import "time"

type Provider struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Speciality string `gorm:"size:100" json:"speciality"`
	About      string `gorm:"size:500" json:"about"`
	Fees       int    `json:"fees"`
	Timezone   string `gorm:"size:64" json:"timezone"`

	OpenHour    int `gorm:"default:10" json:"open_hour"`
	CloseHour   int `gorm:"default:21" json:"close_hour"`
	SlotMinutes int `gorm:"default:30" json:"slot_minutes"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
