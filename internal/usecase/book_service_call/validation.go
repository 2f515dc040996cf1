package book_service_call

import (
	"fmt"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

// validateRequest rejects requests that cannot possibly be booked.
// Validation failures never reach the CRM.
func validateRequest(req *domain.BookingRequest, corrID string) error {
	var problems []string

	if req.FirstName == "" && req.LastName == "" {
		problems = append(problems, "a first or last name is required")
	}
	if req.NormalizedPhone() == "" {
		problems = append(problems, "a valid 10-digit phone is required")
	}
	if req.Street == "" || req.City == "" || req.Zip == "" {
		problems = append(problems, "street, city and zip are required")
	}
	if req.Description == "" {
		problems = append(problems, "a problem description is required")
	}
	if req.Preference != "" && !req.Preference.Valid() {
		problems = append(problems, fmt.Sprintf("unknown time preference %q", req.Preference))
	}
	if req.SearchDays != 0 && (req.SearchDays < domain.MinSearchDays || req.SearchDays > domain.MaxSearchDays) {
		problems = append(problems, fmt.Sprintf("search days must be between %d and %d", domain.MinSearchDays, domain.MaxSearchDays))
	}

	if len(problems) == 0 {
		return nil
	}

	e := structerr.New(structerr.TypeValidation, structerr.CodeBadInput,
		fmt.Sprintf("invalid booking request: %v", problems), corrID)
	return e.WithDetail("problems", problems)
}

// applyDefaults fills the optional knobs callers usually leave empty.
func applyDefaults(req *domain.BookingRequest) {
	if req.Preference == "" {
		req.Preference = domain.PreferenceAny
	}
	if req.SearchDays == 0 {
		req.SearchDays = domain.DefaultSearchDays
	}
	if req.Country == "" {
		req.Country = "US"
	}
}
