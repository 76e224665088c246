package dto

import "time"

type AppointmentListDTO struct {
	ID         string    `json:"id"`
	ProviderID uint      `json:"provider_id"`
	SubjectID  string    `json:"subject_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
