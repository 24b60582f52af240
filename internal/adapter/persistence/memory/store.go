// Package memory is an in-process storage driver. It implements the same contracts as the
// DynamoDB repositories, including the atomic welcome claim and the version check, and is
// used for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/usecase/interfaces"
)

// Store keeps every table behind a single lock so cross-table writes are atomic.
type Store struct {
	mu         sync.RWMutex
	vehicles   map[string]entities.Vehicle
	variations map[string]entities.VehicleVariation
	options    map[string]entities.Option
	customers  map[string]entities.Customer
	quotations map[string]entities.QuotationRecord
}

func NewStore() *Store {
	return &Store{
		vehicles:   map[string]entities.Vehicle{},
		variations: map[string]entities.VehicleVariation{},
		options:    map[string]entities.Option{},
		customers:  map[string]entities.Customer{},
		quotations: map[string]entities.QuotationRecord{},
	}
}

// Repositories returns the three repository views over the same store.
func (s *Store) Repositories() (*CatalogRepository, *CustomerRepository, *QuotationRepository) {
	return &CatalogRepository{s: s}, &CustomerRepository{s: s}, &QuotationRepository{s: s}
}

type CatalogRepository struct{ s *Store }

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) GetVehicle(_ context.Context, id string) (entities.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.vehicles[id], nil
}

func (r *CatalogRepository) GetVariation(_ context.Context, id string) (entities.VehicleVariation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.variations[id], nil
}

func (r *CatalogRepository) GetOption(_ context.Context, id string) (entities.Option, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.options[id], nil
}

func (r *CatalogRepository) ListVehicles(_ context.Context) ([]entities.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Vehicle, 0, len(r.s.vehicles))
	for _, v := range r.s.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) ListVariationsByVehicle(_ context.Context, vehicleID string) ([]entities.VehicleVariation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.VehicleVariation{}
	for _, v := range r.s.variations {
		if v.VehicleID == vehicleID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) ListOptions(_ context.Context) ([]entities.Option, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Option, 0, len(r.s.options))
	for _, o := range r.s.options {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) PutVehicle(_ context.Context, v entities.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.vehicles[v.ID] = v
	return nil
}

func (r *CatalogRepository) PutVariation(_ context.Context, v entities.VehicleVariation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.variations[v.ID] = v
	return nil
}

func (r *CatalogRepository) PutOption(_ context.Context, o entities.Option) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.options[o.ID] = o
	return nil
}

type CustomerRepository struct{ s *Store }

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

// Create is idempotent on email: a concurrent creation for the same email returns the
// customer that won.
func (r *CustomerRepository) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.findCustomerByEmail(c.Email); ok {
		return existing, nil
	}
	r.s.customers[c.ID] = c
	return c, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.customers[id], nil
}

func (r *CustomerRepository) GetByEmail(_ context.Context, email string) (entities.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, _ := r.s.findCustomerByEmail(email)
	return c, nil
}

func (s *Store) findCustomerByEmail(email string) (entities.Customer, bool) {
	if email == "" {
		return entities.Customer{}, false
	}
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return entities.Customer{}, false
}

type QuotationRepository struct{ s *Store }

var _ interfaces.IQuotationRepository = (*QuotationRepository)(nil)

func (r *QuotationRepository) Create(_ context.Context, q entities.QuotationRecord) (entities.QuotationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.quotations[q.ID]; exists {
		return entities.QuotationRecord{}, interfaces.ErrStaleQuotation
	}
	r.s.quotations[q.ID] = cloneRecord(q)
	return q, nil
}

// CreateClaimingWelcome stores q and clears the customer's first-quotation flag under one
// lock. It fails with ErrWelcomeAlreadyClaimed, writing nothing, when the flag is already
// false.
func (r *QuotationRepository) CreateClaimingWelcome(_ context.Context, q entities.QuotationRecord, customerID string) (entities.QuotationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.customers[customerID]
	if !ok || !c.FirstQuotation {
		return entities.QuotationRecord{}, interfaces.ErrWelcomeAlreadyClaimed
	}
	if _, exists := r.s.quotations[q.ID]; exists {
		return entities.QuotationRecord{}, interfaces.ErrStaleQuotation
	}

	c.FirstQuotation = false
	c.UpdatedAt = q.CreatedAt
	r.s.customers[customerID] = c
	r.s.quotations[q.ID] = cloneRecord(q)
	return q, nil
}

// Update replaces the stored record when its version equals expectedVersion. A missing
// record yields a zero value; a version mismatch yields ErrStaleQuotation.
func (r *QuotationRepository) Update(_ context.Context, q entities.QuotationRecord, expectedVersion int64) (entities.QuotationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.quotations[q.ID]
	if !ok {
		return entities.QuotationRecord{}, nil
	}
	if current.Version != expectedVersion {
		return entities.QuotationRecord{}, interfaces.ErrStaleQuotation
	}
	r.s.quotations[q.ID] = cloneRecord(q)
	return q, nil
}

func (r *QuotationRepository) GetByID(_ context.Context, id string) (entities.QuotationRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q, ok := r.s.quotations[id]
	if !ok {
		return entities.QuotationRecord{}, nil
	}
	return cloneRecord(q), nil
}

func (r *QuotationRepository) List(_ context.Context) ([]entities.QuotationRecord, error) {
	return r.filter(func(entities.QuotationRecord) bool { return true }), nil
}

func (r *QuotationRepository) ListByCustomerEmail(_ context.Context, email string) ([]entities.QuotationRecord, error) {
	return r.filter(func(q entities.QuotationRecord) bool {
		return q.CustomerEmail != "" && strings.EqualFold(q.CustomerEmail, email)
	}), nil
}

// filter returns matches oldest first.
func (r *QuotationRepository) filter(keep func(entities.QuotationRecord) bool) []entities.QuotationRecord {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.QuotationRecord{}
	for _, q := range r.s.quotations {
		if keep(q) {
			out = append(out, cloneRecord(q))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func cloneRecord(q entities.QuotationRecord) entities.QuotationRecord {
	q.OptionIDs = slices.Clone(q.OptionIDs)
	return q
}
