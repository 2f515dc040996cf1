package get_capacity

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// ExpressWindowResponse is one fillable near-term window on the wire.
type ExpressWindowResponse struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Technicians []string `json:"technicians"`
}

// CapacityResponse is the HTTP response model.
type CapacityResponse struct {
	Date           string                  `json:"date"`
	State          string                  `json:"state"`
	Score          int                     `json:"score"`
	ExpressWindows []ExpressWindowResponse `json:"expressWindows"`
	ExpiresAt      string                  `json:"expiresAt"`
	CorrelationID  string                  `json:"correlationId"`
}

// FromSnapshot converts a capacity snapshot into the HTTP model.
func FromSnapshot(snap *domain.CapacitySnapshot) *CapacityResponse {
	express := make([]ExpressWindowResponse, 0, len(snap.ExpressWindows))
	for _, ew := range snap.ExpressWindows {
		express = append(express, ExpressWindowResponse{
			Start:       ew.Window.Start.Format(time.RFC3339),
			End:         ew.Window.End.Format(time.RFC3339),
			Technicians: ew.Technicians,
		})
	}
	return &CapacityResponse{
		Date:           snap.Date.Format(domain.DateFormat),
		State:          string(snap.State),
		Score:          snap.Score,
		ExpressWindows: express,
		ExpiresAt:      snap.ExpiresAt.Format(time.RFC3339),
		CorrelationID:  snap.CorrelationID,
	}
}
