package customers

import (
	"context"
	"fmt"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/normalize"
)

// Lookup runs the strict returning-customer match: the candidate must
// carry the exact normalized first and last name AND the phone must
// appear among all phone fields on the record. Ties go to the most
// recently created record, falling back to input order when creation
// timestamps are unavailable. No match means ErrNotFound, never a
// fuzzy guess.
func (s *Service) Lookup(ctx context.Context, firstName, lastName, phone string) (*domain.Customer, error) {
	wantPhone := normalize.Phone(phone)
	if wantPhone == "" {
		return nil, fmt.Errorf("%w: phone must normalize to 10 digits", ErrInvalidInput)
	}
	wantFirst := normalize.Name(firstName)
	wantLast := normalize.Name(lastName)
	if wantFirst == "" || wantLast == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	candidates, err := s.crm.SearchCustomers(ctx, wantPhone, 0)
	if err != nil {
		return nil, err
	}

	var best *domain.Customer
	for _, c := range candidates {
		if normalize.Name(c.FirstName) != wantFirst || normalize.Name(c.LastName) != wantLast {
			continue
		}
		if !hasPhone(c, wantPhone) {
			continue
		}
		if best == nil || createdAfter(c, best) {
			best = c
		}
	}

	if best == nil {
		s.log.Info("Lookup: no strict match for phone=%s", wantPhone)
		return nil, ErrNotFound
	}
	return best, nil
}

func hasPhone(c *domain.Customer, want string) bool {
	for _, p := range c.Phones() {
		if normalize.Phone(p) == want {
			return true
		}
	}
	return false
}

// createdAfter reports whether a was created strictly after b. Records
// without timestamps never displace an earlier pick, which preserves
// input order as the tie-break.
func createdAfter(a, b *domain.Customer) bool {
	if a.CreatedAt == nil || b.CreatedAt == nil {
		return false
	}
	return a.CreatedAt.After(*b.CreatedAt)
}
