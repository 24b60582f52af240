package interfaces

import (
	"context"
	"errors"
	"vehicle_quotation/internal/domain/entities"
)

var (
	// ErrWelcomeAlreadyClaimed is returned by CreateClaimingWelcome when the customer's
	// first-quotation flag was already cleared by a concurrent creation.
	ErrWelcomeAlreadyClaimed = errors.New("welcome discount already claimed")

	// ErrStaleQuotation is returned by Update when the stored version moved on.
	ErrStaleQuotation = errors.New("stale quotation version")
)

// IQuotationRepository abstracts persistence for quotations.
//
// Not found is reported as a zero-value record (ID == "") with a nil error.
//
// The lifecycle needs to:
//   - create a quotation, optionally clearing the customer's first-quotation flag in the
//     same atomic write
//   - update a quotation guarded by its version
//   - list all quotations and the quotations of a customer email

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.QuotationRecord) (entities.QuotationRecord, error)
	CreateClaimingWelcome(ctx context.Context, q entities.QuotationRecord, customerID string) (entities.QuotationRecord, error)
	Update(ctx context.Context, q entities.QuotationRecord, expectedVersion int64) (entities.QuotationRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuotationRecord, error)
	List(ctx context.Context) ([]entities.QuotationRecord, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.QuotationRecord, error)
}
