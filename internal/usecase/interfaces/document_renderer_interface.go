package interfaces

import (
	"context"
	"vehicle_quotation/internal/domain/entities"
)

// IDocumentRenderer turns a priced quotation into a binary document (e.g. a PDF).
type IDocumentRenderer interface {
	Render(ctx context.Context, q entities.PricedQuotation) ([]byte, error)
	ContentType() string
	Extension() string
}
