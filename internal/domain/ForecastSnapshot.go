package domain

import "time"

// ForecastSnapshot representa um relatório de previsão persistido pelo agendador
type ForecastSnapshot struct {
	ID          string          `json:"id"`
	Horizon     int             `json:"horizon"`
	TargetField TargetField     `json:"target_field"`
	Report      *ForecastReport `json:"report"`
	GeneratedAt time.Time       `json:"generated_at"`
	CreatedAt   time.Time       `json:"created_at"`
}
