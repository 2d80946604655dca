package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/order-desk/internal/catalog"
	"github.com/SergeyBogomolovv/order-desk/internal/draft"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/postal"
	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/internal/search"
	"github.com/SergeyBogomolovv/order-desk/internal/submit"
	"github.com/SergeyBogomolovv/order-desk/pkg/cache"
	"github.com/shopspring/decimal"
)

type Catalog interface {
	FetchAll(ctx context.Context) ([]entities.Product, error)
	Search(ctx context.Context, query string) ([]entities.Product, error)
	MinPriceByID(ctx context.Context, productID string) (decimal.NullDecimal, error)
	MinPriceByName(ctx context.Context, name string) (decimal.NullDecimal, error)
}

type PostalLookup interface {
	Lookup(ctx context.Context, code string) (postal.Address, error)
}

type Submitter interface {
	Submit(ctx context.Context, draftID string, order submit.Order) error
}

type Options struct {
	HandoffPhone    string
	SubmitTimeout   time.Duration
	SearchDebounce  time.Duration
	MinQueryLen     int
	SessionCapacity int
	SessionTTL      time.Duration
}

// session is one open order form. mu serializes every change to the draft.
// Lock order: debouncer, then session cache, then mu.
type session struct {
	mu      sync.Mutex
	draft   *entities.Draft
	catalog *catalog.Catalog
}

// View is a consistent copy of a draft and everything derived from it.
type View struct {
	Draft     entities.Draft
	Gate      draft.Gate
	Message   string
	Searching []string
}

// SendResult is what the user gets after sending: the message and the link
// that opens it in the messaging app. Submitted tells whether the order
// intake accepted the order; the handoff happens either way.
type SendResult struct {
	Message   string
	URL       string
	Submitted bool
}

// BlockedError is returned by Send while the gate is blocked.
type BlockedError struct {
	Gate draft.Gate
}

func (e *BlockedError) Error() string { return e.Gate.Reason() }

func (e *BlockedError) Unwrap() error { return entities.ErrSubmissionBlocked }

type Desk struct {
	logger    *slog.Logger
	catalog   Catalog
	postal    PostalLookup
	submitter Submitter
	deriver   pricing.Deriver
	sessions  *cache.LRUCache[*session]
	searcher  *search.Debouncer[[]entities.Product]
	opts      Options
}

func NewDesk(logger *slog.Logger, catalog Catalog, postal PostalLookup, submitter Submitter, deriver pricing.Deriver, opts Options) *Desk {
	d := &Desk{
		logger:    logger.With(slog.String("service", "desk")),
		catalog:   catalog,
		postal:    postal,
		submitter: submitter,
		deriver:   deriver,
		sessions:  cache.NewLRUCache[*session](opts.SessionCapacity, opts.SessionTTL),
		opts:      opts,
	}
	d.searcher = search.NewDebouncer[[]entities.Product](opts.SearchDebounce, opts.MinQueryLen, catalog.Search, d.applySuggestions)
	// Runs under the cache lock: it must not reach the debouncer, whose
	// callbacks take the cache lock themselves.
	d.sessions.OnEvict(func(key string, _ *session) {
		sessionsEvicted.Inc()
		d.logger.Debug("draft session evicted", slog.String("draft_id", key))
	})
	return d
}

// Start expires idle draft sessions until ctx is done.
func (d *Desk) Start(ctx context.Context) error {
	return d.sessions.Start(ctx)
}

func (d *Desk) Close() error {
	return d.searcher.Close()
}

// CreateDraft opens a draft session with its own catalog snapshot. A catalog
// outage leaves the snapshot empty; lines can still be priced remotely.
func (d *Desk) CreateDraft(ctx context.Context) (View, error) {
	products, err := d.catalog.FetchAll(ctx)
	if err != nil {
		d.logger.WarnContext(ctx, "catalog unavailable, starting draft without snapshot", slog.Any("error", err))
		products = nil
	}

	s := &session{
		draft:   draft.New(),
		catalog: catalog.New(products),
	}
	d.sessions.Set(s.draft.ID, s)
	d.logger.InfoContext(ctx, "draft created", slog.String("draft_id", s.draft.ID), slog.Int("products", s.catalog.Len()))

	return d.GetDraft(ctx, s.draft.ID)
}

func (d *Desk) GetDraft(ctx context.Context, draftID string) (View, error) {
	return d.update(draftID, func(*session) error { return nil })
}

// Products returns the catalog snapshot of a draft.
// Products lists the draft's catalog snapshot, narrowed to names or codes
// containing query when it is not blank.
func (d *Desk) Products(ctx context.Context, draftID, query string) ([]entities.Product, error) {
	s, err := d.session(draftID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return s.catalog.Products(), nil
	}
	return s.catalog.Filter(query, 0), nil
}

func (d *Desk) SetCustomer(ctx context.Context, draftID, name string) (View, error) {
	return d.update(draftID, func(s *session) error {
		s.draft.Customer = name
		return nil
	})
}

func (d *Desk) SetAddress(ctx context.Context, draftID string, addr entities.Address) (View, error) {
	return d.update(draftID, func(s *session) error {
		s.draft.Address = addr
		return nil
	})
}

func (d *Desk) SetPayment(ctx context.Context, draftID string, method entities.PaymentMethod) (View, error) {
	if method != "" && !method.Valid() {
		return View{}, entities.ErrInvalidPayment
	}
	return d.update(draftID, func(s *session) error {
		s.draft.Payment = method
		return nil
	})
}

// LookupPostalCode fills street, district and city from the postal service.
// Number and complement are kept. Outages read as "not found".
func (d *Desk) LookupPostalCode(ctx context.Context, draftID, code string) (View, error) {
	if _, err := d.session(draftID); err != nil {
		return View{}, err
	}

	addr, err := d.postal.Lookup(ctx, code)
	if err != nil {
		if !errors.Is(err, postal.ErrInvalidCode) && !errors.Is(err, postal.ErrNotFound) {
			d.logger.ErrorContext(ctx, "postal lookup failed", slog.Any("error", err), slog.String("cep", code))
			err = postal.ErrNotFound
		}
		return View{}, err
	}

	return d.update(draftID, func(s *session) error {
		s.draft.Address.PostalCode = addr.PostalCode
		s.draft.Address.Street = addr.Street
		s.draft.Address.District = addr.District
		s.draft.Address.City = addr.City
		return nil
	})
}

// AddLine appends a line, optionally with a product already selected.
func (d *Desk) AddLine(ctx context.Context, draftID, productID string) (View, error) {
	s, err := d.session(draftID)
	if err != nil {
		return View{}, err
	}

	var sel *draft.Selection
	if productID != "" {
		p, ok := s.catalog.Find(productID)
		if !ok {
			return View{}, entities.ErrProductNotFound
		}
		sel = d.resolve(ctx, p)
	}

	return d.update(draftID, func(s *session) error {
		draft.AddLine(s.draft, sel, d.deriver.Fallback)
		return nil
	})
}

func (d *Desk) RemoveLine(ctx context.Context, draftID, lineID string) (View, error) {
	view, err := d.update(draftID, func(s *session) error {
		return draft.RemoveLine(s.draft, lineID)
	})
	if err != nil {
		return View{}, err
	}
	d.searcher.Cancel(searchKey(draftID, lineID))
	return d.withSearching(view), nil
}

func (d *Desk) MoveLineUp(ctx context.Context, draftID, lineID string) (View, error) {
	return d.update(draftID, func(s *session) error {
		return draft.MoveUp(s.draft, lineID)
	})
}

func (d *Desk) MoveLineDown(ctx context.Context, draftID, lineID string) (View, error) {
	return d.update(draftID, func(s *session) error {
		return draft.MoveDown(s.draft, lineID)
	})
}

func (d *Desk) SetLineQuantity(ctx context.Context, draftID, lineID string, quantity int) (View, error) {
	return d.update(draftID, func(s *session) error {
		return draft.SetQuantity(s.draft, lineID, quantity)
	})
}

func (d *Desk) SetLinePrice(ctx context.Context, draftID, lineID, price string) (View, error) {
	return d.update(draftID, func(s *session) error {
		return draft.SetPrice(s.draft, lineID, price)
	})
}

// SelectLineProduct sets the product of a line from the draft's catalog
// snapshot or the line's search suggestions. An empty productID clears it.
func (d *Desk) SelectLineProduct(ctx context.Context, draftID, lineID, productID string) (View, error) {
	s, err := d.session(draftID)
	if err != nil {
		return View{}, err
	}

	if productID == "" {
		return d.update(draftID, func(s *session) error {
			return draft.SelectProduct(s.draft, lineID, nil, d.deriver.Fallback)
		})
	}

	p, err := d.findProduct(s, lineID, productID)
	if err != nil {
		return View{}, err
	}
	sel := d.resolve(ctx, p)

	return d.update(draftID, func(s *session) error {
		return draft.SelectProduct(s.draft, lineID, sel, d.deriver.Fallback)
	})
}

func (d *Desk) findProduct(s *session, lineID, productID string) (entities.Product, error) {
	if p, ok := s.catalog.Find(productID); ok {
		return p, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	line, err := draft.Line(s.draft, lineID)
	if err != nil {
		return entities.Product{}, err
	}
	for _, p := range line.Suggestions {
		if p.ID == productID {
			return p, nil
		}
	}
	return entities.Product{}, entities.ErrProductNotFound
}

// resolve works out the minimum price of a product: derived from its own
// record, else asked from the price service by id, then by name, else the
// fallback. Remote failures only move on to the next step.
func (d *Desk) resolve(ctx context.Context, p entities.Product) *draft.Selection {
	sel := &draft.Selection{Product: p.Ref()}

	base := p.BasePrice
	if !base.Valid {
		base = pricing.ExtractBasePrice(p.Raw)
	}
	if base.Valid && base.Decimal.IsPositive() {
		sel.MinPrice = d.deriver.Minimum(base)
		minPriceResolutions.WithLabelValues("local").Inc()
		return sel
	}

	lookups := []struct {
		source string
		key    string
		fn     func(context.Context, string) (decimal.NullDecimal, error)
	}{
		{source: "remote_id", key: p.ID, fn: d.catalog.MinPriceByID},
		{source: "remote_name", key: p.Name, fn: d.catalog.MinPriceByName},
	}
	for _, l := range lookups {
		if l.key == "" {
			continue
		}
		minPrice, err := l.fn(ctx, l.key)
		if err != nil {
			d.logger.DebugContext(ctx, "price lookup failed", slog.String("source", l.source), slog.String("key", l.key), slog.Any("error", err))
			continue
		}
		if minPrice.Valid && minPrice.Decimal.IsPositive() {
			sel.MinPrice = minPrice.Decimal.Round(2)
			minPriceResolutions.WithLabelValues(l.source).Inc()
			return sel
		}
	}

	d.logger.DebugContext(ctx, "no price for product, using fallback minimum", slog.String("product_id", p.ID))
	sel.MinPrice = d.deriver.Fallback
	minPriceResolutions.WithLabelValues("fallback").Inc()
	return sel
}

// SearchForLine records what was typed in a line's product picker and
// schedules the debounced lookup. Suggestions show up on later reads.
func (d *Desk) SearchForLine(ctx context.Context, draftID, lineID, query string) (View, error) {
	view, err := d.update(draftID, func(s *session) error {
		line, err := draft.Line(s.draft, lineID)
		if err != nil {
			return err
		}
		line.Query = query
		return nil
	})
	if err != nil {
		return View{}, err
	}

	d.searcher.Trigger(searchKey(draftID, lineID), query)
	return d.withSearching(view), nil
}

// SearchProducts is a plain catalog search. Outages yield no products.
func (d *Desk) SearchProducts(ctx context.Context, query string) []entities.Product {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < d.opts.MinQueryLen {
		return nil
	}
	products, err := d.catalog.Search(ctx, query)
	if err != nil {
		d.logger.WarnContext(ctx, "catalog search failed", slog.Any("error", err), slog.String("query", query))
		return nil
	}
	return products
}

// applySuggestions runs under the debouncer lock; it only touches the session.
func (d *Desk) applySuggestions(key string, res search.Result[[]entities.Product]) {
	draftID, lineID, _ := strings.Cut(key, "/")

	switch {
	case res.Err != nil:
		searchLookups.WithLabelValues("error").Inc()
		d.logger.Warn("line search failed", slog.Any("error", res.Err), slog.String("query", res.Query))
	case utf8.RuneCountInString(res.Query) >= d.opts.MinQueryLen:
		searchLookups.WithLabelValues("ok").Inc()
	}

	s, ok := d.sessions.Get(draftID)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := draft.Line(s.draft, lineID)
	if err != nil || strings.TrimSpace(line.Query) != res.Query {
		return
	}
	line.Suggestions = res.Items
}

func (d *Desk) Preview(ctx context.Context, draftID string) (string, error) {
	view, err := d.GetDraft(ctx, draftID)
	if err != nil {
		return "", err
	}
	return view.Message, nil
}

// Send checks the gate, hands the order to the intake and returns the
// message link. Intake failures are logged; they never stop the handoff.
func (d *Desk) Send(ctx context.Context, draftID string) (SendResult, error) {
	view, err := d.GetDraft(ctx, draftID)
	if err != nil {
		return SendResult{}, err
	}
	if view.Gate.Blocked {
		gateBlocked.Inc()
		return SendResult{}, &BlockedError{Gate: view.Gate}
	}

	res := SendResult{
		Message: view.Message,
		URL:     draft.HandoffURL(d.opts.HandoffPhone, view.Message),
	}

	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.opts.SubmitTimeout)
	defer cancel()
	if err := d.submitter.Submit(submitCtx, draftID, submit.OrderFromDraft(view.Draft)); err != nil {
		submissions.WithLabelValues("failed").Inc()
		d.logger.ErrorContext(ctx, "failed to submit order", slog.Any("error", err), slog.String("draft_id", draftID))
	} else {
		submissions.WithLabelValues("ok").Inc()
		res.Submitted = true
	}

	d.logger.InfoContext(ctx, "order handed off", slog.String("draft_id", draftID), slog.Bool("submitted", res.Submitted))
	return res, nil
}

func (d *Desk) session(draftID string) (*session, error) {
	s, ok := d.sessions.Get(draftID)
	if !ok {
		return nil, entities.ErrDraftNotFound
	}
	d.sessions.Touch(draftID)
	return s, nil
}

// update runs fn with the session locked and returns a view of the result.
func (d *Desk) update(draftID string, fn func(s *session) error) (View, error) {
	s, err := d.session(draftID)
	if err != nil {
		return View{}, err
	}

	view, err := func() (View, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := fn(s); err != nil {
			return View{}, fmt.Errorf("draft %s: %w", draftID, err)
		}
		return snapshot(s.draft), nil
	}()
	if err != nil {
		return View{}, err
	}
	return d.withSearching(view), nil
}

// withSearching must be called without the session lock held.
func (d *Desk) withSearching(view View) View {
	for _, l := range view.Draft.Lines {
		if d.searcher.Pending(searchKey(view.Draft.ID, l.ID)) {
			view.Searching = append(view.Searching, l.ID)
		}
	}
	return view
}

func snapshot(dr *entities.Draft) View {
	cp := *dr
	cp.Lines = slices.Clone(dr.Lines)
	return View{
		Draft:   cp,
		Gate:    draft.Evaluate(cp.Lines),
		Message: draft.Compose(cp),
	}
}

func searchKey(draftID, lineID string) string {
	return draftID + "/" + lineID
}
