package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vehicle_quotation/internal/domain"
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/pricing"
	"vehicle_quotation/internal/infrastructure/logging"
	"vehicle_quotation/internal/infrastructure/metrics"
	"vehicle_quotation/internal/usecase/interfaces"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
)

// QuotationInput is the request shape shared by create and update.
//
// A nil field is absent. On update absent fields keep the stored reference, and a
// non-nil OptionIDs replaces the whole option set (an empty slice clears it).
type QuotationInput struct {
	VehicleID   *string
	VariationID *string
	OptionIDs   *[]string
	Customer    *CustomerInput
}

// Document is a rendered quotation ready to be served.
type Document struct {
	Content     []byte
	Filename    string
	ContentType string
}

// IQuotationUseCase exposes the quotation lifecycle.
//
// Every returned quotation is priced at call time; the adjustment log is never read
// from storage.

type IQuotationUseCase interface {
	Create(ctx context.Context, in QuotationInput) (entities.PricedQuotation, error)
	Update(ctx context.Context, id string, in QuotationInput) (entities.PricedQuotation, error)
	GetByID(ctx context.Context, id string) (entities.PricedQuotation, error)
	ListAll(ctx context.Context) ([]entities.PricedQuotation, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.PricedQuotation, error)
	RenderDocument(ctx context.Context, id string) (Document, error)
}

type QuotationUseCase struct {
	quotations interfaces.IQuotationRepository
	catalog    interfaces.ICatalogRepository
	customers  customerResolver
	pipeline   *pricing.Pipeline
	renderer   interfaces.IDocumentRenderer
	metrics    *metrics.Quotation
	log        *zap.Logger
	now        func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

// QuotationOption customises a QuotationUseCase.
type QuotationOption func(*QuotationUseCase)

func WithLogger(l *zap.Logger) QuotationOption {
	return func(u *QuotationUseCase) { u.log = logging.OrNop(l) }
}

func WithMetrics(m *metrics.Quotation) QuotationOption {
	return func(u *QuotationUseCase) { u.metrics = m }
}

func WithClock(now func() time.Time) QuotationOption {
	return func(u *QuotationUseCase) {
		u.now = now
		u.customers.now = now
	}
}

func NewQuotationUseCase(
	quotations interfaces.IQuotationRepository,
	customers interfaces.ICustomerRepository,
	catalog interfaces.ICatalogRepository,
	pipeline *pricing.Pipeline,
	renderer interfaces.IDocumentRenderer,
	opts ...QuotationOption,
) *QuotationUseCase {
	u := &QuotationUseCase{
		quotations: quotations,
		catalog:    catalog,
		customers:  customerResolver{repo: customers, now: time.Now},
		pipeline:   pipeline,
		renderer:   renderer,
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.log = u.log.With(zap.String("component", "quotation.usecase"))
	return u
}

func (u *QuotationUseCase) Create(ctx context.Context, in QuotationInput) (entities.PricedQuotation, error) {
	loader := u.newLoader()

	// Catalog reads come first so a missing reference writes nothing, not even a customer.
	q := entities.Quotation{}
	if err := loader.applyCatalogRefs(ctx, &q, in); err != nil {
		return entities.PricedQuotation{}, err
	}

	var resolved *ResolvedCustomer
	if in.Customer != nil {
		var err error
		if resolved, err = u.customers.resolve(ctx, *in.Customer); err != nil {
			return entities.PricedQuotation{}, err
		}
	}
	// A new customer is written only once every reference has resolved.
	if err := u.customers.persist(ctx, resolved); err != nil {
		return entities.PricedQuotation{}, err
	}
	if resolved != nil {
		c := resolved.Customer
		q.Customer = &c
		u.log.Debug("customer resolved",
			zap.String("customer_id", c.ID),
			zap.String("origin", string(resolved.Origin)),
			zap.Bool("first_quotation", c.FirstQuotation))
	}

	now := u.now().UTC()
	q.ID = uuid.NewString()
	q.Version = 1
	q.CreatedAt = now
	q.UpdatedAt = now

	priced, err := u.persistNew(ctx, q)
	u.metrics.ObserveSave(operationCreate, err)
	if err != nil {
		u.log.Error("create quotation failed", zap.String("quotation_id", q.ID), zap.Error(err))
		return entities.PricedQuotation{}, err
	}

	u.observeAdjustments(priced)
	u.log.Info("quotation created",
		zap.String("quotation_id", priced.Quotation.ID),
		zap.String("final_price", priced.Quotation.FinalPrice.String()),
		zap.Bool("welcome_applied", priced.Quotation.WelcomeApplied))
	return priced, nil
}

// persistNew stores a new quotation. When the customer still holds the first-quotation
// flag, the write also clears it atomically; losing that race reprices without the
// welcome discount.
func (u *QuotationUseCase) persistNew(ctx context.Context, q entities.Quotation) (entities.PricedQuotation, error) {
	if q.Customer == nil || !q.Customer.FirstQuotation {
		priced := u.price(q)
		if _, err := u.quotations.Create(ctx, priced.Quotation.Record()); err != nil {
			return entities.PricedQuotation{}, err
		}
		return priced, nil
	}

	q.WelcomeApplied = true
	claimed := *q.Customer
	claimed.FirstQuotation = false
	q.Customer = &claimed

	priced := u.price(q)
	_, err := u.quotations.CreateClaimingWelcome(ctx, priced.Quotation.Record(), claimed.ID)
	switch {
	case err == nil:
		u.metrics.ObserveWelcomeClaim(metrics.WelcomeClaimed)
		return priced, nil
	case errors.Is(err, interfaces.ErrWelcomeAlreadyClaimed):
		u.metrics.ObserveWelcomeClaim(metrics.WelcomeLost)
		u.log.Info("welcome discount already claimed, repricing",
			zap.String("quotation_id", q.ID),
			zap.String("customer_id", claimed.ID))
	default:
		return entities.PricedQuotation{}, err
	}

	q.WelcomeApplied = false
	priced = u.price(q)
	if _, err := u.quotations.Create(ctx, priced.Quotation.Record()); err != nil {
		return entities.PricedQuotation{}, err
	}
	return priced, nil
}

func (u *QuotationUseCase) Update(ctx context.Context, id string, in QuotationInput) (entities.PricedQuotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PricedQuotation{}, domain.NewValidationError("id", "must not be blank")
	}

	rec, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.PricedQuotation{}, err
	}
	if rec.ID == "" {
		return entities.PricedQuotation{}, domain.NewNotFoundError("quotation", id)
	}

	loader := u.newLoader()
	q, err := loader.hydrate(ctx, rec)
	if err != nil {
		return entities.PricedQuotation{}, err
	}

	next := entities.Quotation{}
	if err := loader.applyCatalogRefs(ctx, &next, in); err != nil {
		return entities.PricedQuotation{}, err
	}
	var resolved *ResolvedCustomer
	if in.Customer != nil {
		if resolved, err = u.customers.resolve(ctx, *in.Customer); err != nil {
			return entities.PricedQuotation{}, err
		}
	}
	// Nothing is written before every read above has succeeded.
	if err := u.customers.persist(ctx, resolved); err != nil {
		return entities.PricedQuotation{}, err
	}
	if in.VehicleID != nil && next.Vehicle != nil {
		q.Vehicle = next.Vehicle
	}
	if in.VariationID != nil && next.Variation != nil {
		q.Variation = next.Variation
	}
	if in.OptionIDs != nil {
		q.Options = next.Options
	}
	if resolved != nil {
		c := resolved.Customer
		if q.Customer == nil || q.Customer.ID != c.ID {
			// The welcome discount belongs to the customer that claimed it.
			q.WelcomeApplied = false
		}
		q.Customer = &c
	}

	q.Version = rec.Version + 1
	q.UpdatedAt = u.now().UTC()
	priced := u.price(q)

	stored, err := u.quotations.Update(ctx, priced.Quotation.Record(), rec.Version)
	if err == nil && stored.ID == "" {
		err = domain.NewNotFoundError("quotation", id)
	}
	if errors.Is(err, interfaces.ErrStaleQuotation) {
		err = domain.NewConflictError("quotation", "modified by another request, reload and retry")
	}
	u.metrics.ObserveSave(operationUpdate, err)
	if err != nil {
		u.log.Warn("update quotation failed", zap.String("quotation_id", id), zap.Error(err))
		return entities.PricedQuotation{}, err
	}

	u.observeAdjustments(priced)
	u.log.Info("quotation updated",
		zap.String("quotation_id", id),
		zap.Int64("version", priced.Quotation.Version),
		zap.String("final_price", priced.Quotation.FinalPrice.String()))
	return priced, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.PricedQuotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PricedQuotation{}, domain.NewValidationError("id", "must not be blank")
	}

	rec, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.PricedQuotation{}, err
	}
	if rec.ID == "" {
		return entities.PricedQuotation{}, domain.NewNotFoundError("quotation", id)
	}

	q, err := u.newLoader().hydrate(ctx, rec)
	if err != nil {
		return entities.PricedQuotation{}, err
	}
	return u.price(q), nil
}

func (u *QuotationUseCase) ListAll(ctx context.Context) ([]entities.PricedQuotation, error) {
	recs, err := u.quotations.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.priceAll(ctx, recs)
}

func (u *QuotationUseCase) ListByCustomerEmail(ctx context.Context, email string) ([]entities.PricedQuotation, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "must not be blank")
	}

	recs, err := u.quotations.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u.priceAll(ctx, recs)
}

func (u *QuotationUseCase) RenderDocument(ctx context.Context, id string) (Document, error) {
	priced, err := u.GetByID(ctx, id)
	if err != nil {
		return Document{}, err
	}

	content, err := u.renderer.Render(ctx, priced)
	if err != nil {
		u.log.Error("render quotation document failed", zap.String("quotation_id", priced.Quotation.ID), zap.Error(err))
		return Document{}, err
	}
	return Document{
		Content:     content,
		Filename:    DocumentFilename(priced.Quotation, u.renderer.Extension()),
		ContentType: u.renderer.ContentType(),
	}, nil
}

func (u *QuotationUseCase) priceAll(ctx context.Context, recs []entities.QuotationRecord) ([]entities.PricedQuotation, error) {
	loader := u.newLoader()
	out := make([]entities.PricedQuotation, 0, len(recs))
	for _, rec := range recs {
		q, err := loader.hydrate(ctx, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, u.price(q))
	}
	return out, nil
}

func (u *QuotationUseCase) price(q entities.Quotation) entities.PricedQuotation {
	res := u.pipeline.ComputeFinalPrice(q)
	q.FinalPrice = res.FinalPrice
	return entities.PricedQuotation{Quotation: q, Adjustments: res.Adjustments}
}

func (u *QuotationUseCase) observeAdjustments(p entities.PricedQuotation) {
	for _, a := range p.Adjustments {
		u.metrics.ObserveAdjustment(a.Label)
	}
}

func (u *QuotationUseCase) newLoader() *refLoader {
	return newRefLoader(u.catalog, u.customers.repo)
}

// DocumentFilename builds quote_<name>_<id>.<ext>. The name falls back to "cliente" and
// keeps only letters, digits, '-' and '_'; spaces become underscores.
func DocumentFilename(q entities.Quotation, ext string) string {
	name := ""
	if q.Customer != nil {
		name = q.Customer.FullName()
	}
	name = sanitizeFilenamePart(name)
	if name == "" {
		name = "cliente"
	}
	return "quote_" + name + "_" + sanitizeFilenamePart(q.ID) + "." + ext
}

func sanitizeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '-' || r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
