package search_availability

import (
	"time"

	searchAvailability "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/search_availability"
)

// WindowResponse is one bookable window on the wire.
type WindowResponse struct {
	Start                string `json:"start"`
	End                  string `json:"end"`
	Available            bool   `json:"available"`
	ArrivalWindowMinutes int    `json:"arrivalWindowMinutes"`
	MatchesPreference    bool   `json:"matchesPreference"`
}

// AvailabilityResponse is the HTTP response model.
type AvailabilityResponse struct {
	Windows       []WindowResponse `json:"windows"`
	CorrelationID string           `json:"correlationId"`
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *searchAvailability.Response) *AvailabilityResponse {
	windows := make([]WindowResponse, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		windows = append(windows, WindowResponse{
			Start:                w.Start.Format(time.RFC3339),
			End:                  w.End.Format(time.RFC3339),
			Available:            w.Available,
			ArrivalWindowMinutes: w.ArrivalWindowMinutes,
			MatchesPreference:    w.MatchesPreference,
		})
	}
	return &AvailabilityResponse{
		Windows:       windows,
		CorrelationID: resp.CorrelationID,
	}
}
