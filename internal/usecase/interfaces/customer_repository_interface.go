package interfaces

import (
	"context"
	"vehicle_quotation/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for customers.
// Lookups return a zero-value customer (ID == "") when nothing matches.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
}
