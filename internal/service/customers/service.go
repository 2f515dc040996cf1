// Package customers resolves a booking request to exactly one CRM
// customer record. Concurrent requests for the same person are
// serialized per identity key so a double-submit cannot create
// duplicate customers. The guarantee is per-process; a multi-instance
// deployment needs a distributed lock or a CRM-side idempotency key.
package customers

import (
	"context"
	"fmt"
	"sync"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/normalize"
)

// Service finds or creates CRM customers and runs strict lookups.
type Service struct {
	crm CRMClient
	log Logger

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

// inflightCall is one in-progress find-or-create shared by all waiters
// on the same identity key. The entry is removed when the call
// finishes; errors reach every waiter and are never cached.
type inflightCall struct {
	done     chan struct{}
	customer *domain.Customer
	err      error
}

// NewService creates the resolver.
func NewService(crm CRMClient, log Logger) *Service {
	return &Service{
		crm:      crm,
		log:      log,
		inflight: make(map[string]*inflightCall),
	}
}

// FindOrCreate returns the CRM customer for the request, creating one
// when no match exists. Calls racing on the same identity key share a
// single CRM round trip.
func (s *Service) FindOrCreate(ctx context.Context, req *domain.BookingRequest) (*domain.Customer, error) {
	key := req.IdentityKey()
	if key == "" {
		return nil, fmt.Errorf("%w: request has no identity key", ErrInvalidInput)
	}

	s.mu.Lock()
	if call, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		s.log.Info("FindOrCreate: awaiting in-flight resolution for key=%s", key)
		select {
		case <-call.done:
			return call.customer, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	s.inflight[key] = call
	s.mu.Unlock()

	// The entry must go away on every path so a failure never wedges
	// the key; errors propagate to waiters instead of being cached.
	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
		close(call.done)
	}()

	call.customer, call.err = s.findOrCreate(ctx, req)
	return call.customer, call.err
}

func (s *Service) findOrCreate(ctx context.Context, req *domain.BookingRequest) (*domain.Customer, error) {
	// Lookup by the strongest identifier available.
	query := req.NormalizedPhone()
	if query == "" && req.Email != nil {
		query = normalize.Email(*req.Email)
	}

	if query != "" {
		found, err := s.crm.SearchCustomers(ctx, query, 0)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			s.log.Info("FindOrCreate: matched existing customer id=%s", found[0].ID)
			return found[0], nil
		}
	}

	profile := housecall.CustomerProfile{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MobileNumber:  req.NormalizedPhone(),
		Email:         req.Email,
		LeadSource:    req.LeadSource,
		Notifications: true,
	}

	created, err := s.crm.CreateCustomer(ctx, profile, []housecall.AddressInput{addressInput(req)})
	if err != nil {
		return nil, err
	}

	s.log.Info("FindOrCreate: created customer id=%s", created.ID)
	return created, nil
}

// EnsureAddress returns the customer's service address for the request:
// the first address already on the record, or a newly created one.
func (s *Service) EnsureAddress(ctx context.Context, customer *domain.Customer, req *domain.BookingRequest) (*domain.Address, error) {
	if len(customer.Addresses) > 0 {
		return &customer.Addresses[0], nil
	}

	addr, err := s.crm.CreateAddress(ctx, customer.ID, addressInput(req))
	if err != nil {
		return nil, err
	}
	s.log.Info("EnsureAddress: created address id=%s for customer id=%s", addr.ID, customer.ID)
	return addr, nil
}

func addressInput(req *domain.BookingRequest) housecall.AddressInput {
	street2 := ""
	if req.Street2 != nil {
		street2 = *req.Street2
	}
	return housecall.AddressInput{
		Street:  req.Street,
		Street2: street2,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Country: req.Country,
	}
}
