package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"vehicle_quotation/internal/domain"
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/usecase/interfaces"
)

const (
	defaultCustomerName   = "default"
	placeholderEmailStart = "noemail-"
)

// CustomerOrigin tags how a customer reference was resolved.
type CustomerOrigin string

const (
	CustomerFound   CustomerOrigin = "found"
	CustomerCreated CustomerOrigin = "created"
)

// CustomerInput carries the customer fields of a quotation request. Blank fields are
// treated as absent.
type CustomerInput struct {
	ID      string
	Email   string
	Name    string
	Surname string
	Phone   string
}

func (in CustomerInput) empty() bool {
	return in.ID == "" && in.Email == "" && in.Name == "" && in.Surname == ""
}

// ResolvedCustomer is the outcome of resolving a customer reference. A created
// customer stays pending until persist stores it.
type ResolvedCustomer struct {
	Customer entities.Customer
	Origin   CustomerOrigin

	pending bool
}

type customerResolver struct {
	repo interfaces.ICustomerRepository
	now  func() time.Time
}

// resolve looks the customer up by id, then by email. An unknown email yields a new
// customer, and a request with only a name gets a placeholder identity; neither is
// written here. It returns nil when the input names no customer at all.
func (r customerResolver) resolve(ctx context.Context, in CustomerInput) (*ResolvedCustomer, error) {
	in = normalizeCustomerInput(in)
	if in.empty() {
		return nil, nil
	}

	if in.ID != "" {
		c, err := r.repo.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if c.ID == "" {
			return nil, domain.NewNotFoundError("customer", in.ID)
		}
		return &ResolvedCustomer{Customer: c, Origin: CustomerFound}, nil
	}

	if in.Email != "" {
		c, err := r.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if c.ID != "" {
			return &ResolvedCustomer{Customer: c, Origin: CustomerFound}, nil
		}
		return r.candidate(in, in.Email), nil
	}

	return r.candidate(in, placeholderEmailStart+uuid.NewString()), nil
}

func (r customerResolver) candidate(in CustomerInput, email string) *ResolvedCustomer {
	now := r.now().UTC()
	return &ResolvedCustomer{
		Customer: entities.Customer{
			ID:             uuid.NewString(),
			Name:           valueOrDefault(in.Name, defaultCustomerName),
			Surname:        valueOrDefault(in.Surname, defaultCustomerName),
			Email:          email,
			Phone:          in.Phone,
			FirstQuotation: true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		Origin:  CustomerCreated,
		pending: true,
	}
}

// persist stores a pending customer. If a concurrent request created the same email
// first, res switches to that customer.
func (r customerResolver) persist(ctx context.Context, res *ResolvedCustomer) error {
	if res == nil || !res.pending {
		return nil
	}
	stored, err := r.repo.Create(ctx, res.Customer)
	if err != nil {
		return err
	}
	if stored.ID == "" {
		return fmt.Errorf("customer %q not stored and no owner found for its email", res.Customer.Email)
	}
	if stored.ID != res.Customer.ID {
		res.Origin = CustomerFound
	}
	res.Customer = stored
	res.pending = false
	return nil
}

func normalizeCustomerInput(in CustomerInput) CustomerInput {
	return CustomerInput{
		ID:      strings.TrimSpace(in.ID),
		Email:   normalizeEmail(in.Email),
		Name:    strings.TrimSpace(in.Name),
		Surname: strings.TrimSpace(in.Surname),
		Phone:   strings.TrimSpace(in.Phone),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
