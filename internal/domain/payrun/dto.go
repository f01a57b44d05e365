package payrun

import "time"

type PeriodInstanceResponse struct {
	ID         string    `json:"id"`
	SettingsID string    `json:"settings_id"`
	FromDate   string    `json:"from_date"`
	ToDate     string    `json:"to_date"`
	CheckDate  string    `json:"check_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewPeriodInstanceResponse(p PeriodInstance) PeriodInstanceResponse {
	return PeriodInstanceResponse{
		ID:         p.ID,
		SettingsID: p.SettingsID,
		FromDate:   p.FromDate.Format("2006-01-02"),
		ToDate:     p.ToDate.Format("2006-01-02"),
		CheckDate:  p.CheckDate.Format("2006-01-02"),
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
