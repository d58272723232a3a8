package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/logger"
	"github.com/guttosm/container-order-service/internal/metrics"
)

var (
	// ErrSessionNotFound is returned for unknown, expired or abandoned sessions.
	ErrSessionNotFound = errors.New("order session not found")
	// ErrSubmissionUnavailable is returned when no order submitter is configured.
	ErrSubmissionUnavailable = errors.New("order submission is not available")
	// ErrSubmissionInProgress is returned for operations on a session whose order
	// is being submitted.
	ErrSubmissionInProgress = errors.New("order submission in progress")
	// ErrVariantLookup wraps failures of the variant catalog.
	ErrVariantLookup = errors.New("variant lookup failed")
	// ErrDestinationLookup wraps failures of the destination catalog.
	ErrDestinationLookup = errors.New("destination lookup failed")
	// ErrSubmissionFailed wraps failures of the order submitter.
	ErrSubmissionFailed = errors.New("order submission failed")
)

// VariantLookup fetches variant snapshots from the product catalog.
type VariantLookup interface {
	FetchVariant(ctx context.Context, id string) (model.Variant, error)
}

// OrderSubmitter hands a finished order to the back office.
type OrderSubmitter interface {
	Insert(ctx context.Context, sessionID string, payload model.SubmissionPayload) (model.SubmissionReceipt, error)
}

// DestinationCatalog reports which container configurations a destination accepts.
type DestinationCatalog interface {
	Supports(ctx context.Context, destinationID string, mode model.TransportMode, size string, refrigerated bool) (bool, error)
}

// CapacityTable resolves capacity classes and lists the loaded ones.
type CapacityTable interface {
	CapacityResolver
	Classes() []model.CapacityClass
}

// OrderService drives order sessions: it owns the session store, talks to the
// catalog and submitter collaborators, and applies mutations through a per-session
// FillEngine.
type OrderService interface {
	Create(ctx context.Context, spec model.ContainerSpec) (OrderView, error)
	Get(ctx context.Context, id string) (OrderView, error)
	AddItem(ctx context.Context, id string, slot int, variantID string, quantity int, note string) (MutationResult, error)
	AdjustItem(ctx context.Context, id string, slot int, variantID string, quantity int) (MutationResult, error)
	RemoveItem(ctx context.Context, id string, slot int, variantID string) (MutationResult, error)
	OpenContainer(ctx context.Context, id string, copyFrom int) (MutationResult, error)
	RetypeContainer(ctx context.Context, id string, slot int, size string, refrigerated bool) (MutationResult, error)
	DeleteContainer(ctx context.Context, id string, slot int) (MutationResult, error)
	SwitchActive(ctx context.Context, id string, slot int) (MutationResult, error)
	Payload(ctx context.Context, id string) (model.SubmissionPayload, error)
	Submit(ctx context.Context, id string) (model.SubmissionReceipt, error)
	Abandon(ctx context.Context, id string) error
	CapacityClasses() []model.CapacityClass
	SubmissionEnabled() bool
}

// OrderServiceOption configures an OrderServiceImpl.
type OrderServiceOption func(*OrderServiceImpl)

// WithOrderSubmitter enables submission.
func WithOrderSubmitter(submitter OrderSubmitter) OrderServiceOption {
	return func(s *OrderServiceImpl) {
		s.submitter = submitter
	}
}

// WithDestinationCatalog enables destination route checks on create, open and re-type.
func WithDestinationCatalog(catalog DestinationCatalog) OrderServiceOption {
	return func(s *OrderServiceImpl) {
		s.destinations = catalog
	}
}

// WithSessionStore replaces the default session store.
func WithSessionStore(store *SessionStore) OrderServiceOption {
	return func(s *OrderServiceImpl) {
		if store != nil {
			s.sessions = store
		}
	}
}

// WithEngineOptions sets the options every session's FillEngine is built with.
func WithEngineOptions(opts ...EngineOption) OrderServiceOption {
	return func(s *OrderServiceImpl) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	capacity     CapacityTable
	variants     VariantLookup
	submitter    OrderSubmitter
	destinations DestinationCatalog
	sessions     *SessionStore
	engineOpts   []EngineOption
}

// NewOrderService creates an order service over the capacity table and variant catalog.
func NewOrderService(table CapacityTable, variants VariantLookup, opts ...OrderServiceOption) OrderService {
	s := &OrderServiceImpl{
		capacity: table,
		variants: variants,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = NewSessionStore(DefaultSessionCapacity, DefaultSessionTTL)
	}
	return s
}

// Create opens a session whose order starts with one empty container built from spec.
func (s *OrderServiceImpl) Create(ctx context.Context, spec model.ContainerSpec) (OrderView, error) {
	if out, ok := validateSpec(spec); !ok {
		metrics.RecordEngineOperation("create", out.Label())
		return OrderView{}, out.Err()
	}

	order, err := NewOrder(s.capacity, spec)
	if err != nil {
		out := rejected(0, ReasonConfigurationError, "%v", err)
		metrics.RecordEngineOperation("create", out.Label())
		return OrderView{}, out.Err()
	}

	out, err := s.checkRoute(ctx, 0, route{spec.DestinationID, spec.TransportMode, spec.Size, spec.Refrigerated})
	if err != nil {
		return OrderView{}, err
	}
	if !out.Accepted {
		metrics.RecordEngineOperation("create", out.Label())
		return OrderView{}, out.Err()
	}

	sess := newOrderSession(NewFillEngine(order, s.capacity, s.engineOpts...))
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.sessions.Put(sess)
	metrics.RecordEngineOperation("create", "accepted")

	logger.ForSession(sess.ID).Info().
		Str("capacity_class", order.Active().Capacity.Key().String()).
		Str("destination_id", spec.DestinationID).
		Msg("Order session created")
	return sess.view(), nil
}

// Get returns a snapshot of the session's order.
func (s *OrderServiceImpl) Get(_ context.Context, id string) (OrderView, error) {
	sess, err := s.lock(id)
	if err != nil {
		return OrderView{}, err
	}
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// AddItem fetches variantID from the catalog and adds quantity boxes of it to the
// container at slot. Catalog errors are returned before the order is touched.
func (s *OrderServiceImpl) AddItem(ctx context.Context, id string, slot int, variantID string, quantity int, note string) (MutationResult, error) {
	if _, ok := s.sessions.Get(id); !ok {
		return MutationResult{}, ErrSessionNotFound
	}

	v := model.Variant{ID: variantID}
	if variantID != "" && quantity >= 1 {
		fetched, err := s.variants.FetchVariant(ctx, variantID)
		if err != nil {
			return MutationResult{}, fmt.Errorf("%w: %w", ErrVariantLookup, err)
		}
		v = fetched
		if v.ID == "" {
			v.ID = variantID
		}
	}

	return s.mutate(id, "accept_variant", func(sess *OrderSession) (Outcome, error) {
		return sess.engine.AcceptVariant(slot, v, quantity, note), nil
	})
}

// AdjustItem sets the quantity of an existing line.
func (s *OrderServiceImpl) AdjustItem(_ context.Context, id string, slot int, variantID string, quantity int) (MutationResult, error) {
	return s.mutate(id, "adjust_quantity", func(sess *OrderSession) (Outcome, error) {
		return sess.engine.AdjustQuantity(slot, variantID, quantity), nil
	})
}

// RemoveItem deletes a line.
func (s *OrderServiceImpl) RemoveItem(_ context.Context, id string, slot int, variantID string) (MutationResult, error) {
	return s.mutate(id, "remove_item", func(sess *OrderSession) (Outcome, error) {
		return sess.engine.RemoveItem(slot, variantID), nil
	})
}

// OpenContainer appends a container with the settings of the one at copyFrom.
// The destination catalog is asked without holding the session lock.
func (s *OrderServiceImpl) OpenContainer(ctx context.Context, id string, copyFrom int) (MutationResult, error) {
	var checked *route
	if err := s.inspect(id, func(sess *OrderSession) {
		if src, err := sess.engine.Order().Container(copyFrom); err == nil {
			r := routeOf(src)
			checked = &r
		}
	}); err != nil {
		return MutationResult{}, err
	}
	if checked != nil {
		if out, err := s.checkRoute(ctx, copyFrom, *checked); err != nil || !out.Accepted {
			return s.reject(id, "open_container", out, err)
		}
	}

	return s.mutate(id, "open_container", func(sess *OrderSession) (Outcome, error) {
		if src, err := sess.engine.Order().Container(copyFrom); err == nil && (checked == nil || routeOf(src) != *checked) {
			return rejected(copyFrom, ReasonConfigurationError, "container %d changed while its route was checked", copyFrom), nil
		}
		return sess.engine.OpenNewContainer(copyFrom), nil
	})
}

// RetypeContainer changes the capacity class of the container at slot.
func (s *OrderServiceImpl) RetypeContainer(ctx context.Context, id string, slot int, size string, refrigerated bool) (MutationResult, error) {
	var checked *route
	if err := s.inspect(id, func(sess *OrderSession) {
		if sess.engine.Order().ValidSlot(slot) {
			checked = &route{sess.spec.DestinationID, sess.spec.TransportMode, size, refrigerated}
		}
	}); err != nil {
		return MutationResult{}, err
	}
	if checked != nil {
		if out, err := s.checkRoute(ctx, slot, *checked); err != nil || !out.Accepted {
			return s.reject(id, "retype_container", out, err)
		}
	}

	return s.mutate(id, "retype_container", func(sess *OrderSession) (Outcome, error) {
		if checked == nil && sess.engine.Order().ValidSlot(slot) {
			return rejected(slot, ReasonConfigurationError, "container %d changed while its route was checked", slot), nil
		}
		return sess.engine.RetypeContainer(slot, size, refrigerated), nil
	})
}

// DeleteContainer removes the container at slot.
func (s *OrderServiceImpl) DeleteContainer(_ context.Context, id string, slot int) (MutationResult, error) {
	return s.mutate(id, "delete_container", func(sess *OrderSession) (Outcome, error) {
		return sess.engine.DeleteContainer(slot), nil
	})
}

// SwitchActive makes the container at slot the active one.
func (s *OrderServiceImpl) SwitchActive(_ context.Context, id string, slot int) (MutationResult, error) {
	return s.mutate(id, "switch_active", func(sess *OrderSession) (Outcome, error) {
		return sess.engine.SwitchActive(slot), nil
	})
}

// Payload previews the submission payload of the session's order.
func (s *OrderServiceImpl) Payload(_ context.Context, id string) (model.SubmissionPayload, error) {
	sess, err := s.lock(id)
	if err != nil {
		return model.SubmissionPayload{}, err
	}
	defer sess.mu.Unlock()
	return ToSubmissionPayload(sess.engine.Order())
}

// Submit hands the order to the submitter and resets it on success. The session
// lock is released while the submitter runs; mutations in that window fail with
// ErrSubmissionInProgress.
func (s *OrderServiceImpl) Submit(ctx context.Context, id string) (model.SubmissionReceipt, error) {
	if s.submitter == nil {
		metrics.RecordOrderSubmission("unavailable")
		return model.SubmissionReceipt{}, ErrSubmissionUnavailable
	}

	sess, err := s.lock(id)
	if err != nil {
		return model.SubmissionReceipt{}, err
	}
	payload, err := ToSubmissionPayload(sess.engine.Order())
	if err != nil {
		sess.mu.Unlock()
		metrics.RecordOrderSubmission("empty")
		return model.SubmissionReceipt{}, err
	}
	sess.submitting = true
	sess.mu.Unlock()

	receipt, err := s.submitter.Insert(ctx, sess.ID, payload)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.submitting = false

	if err != nil {
		metrics.RecordOrderSubmission("failed")
		logger.ForSession(sess.ID).Error().Err(err).Msg("Order submission failed")
		return model.SubmissionReceipt{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	sess.engine.Reset()
	sess.touch()
	metrics.RecordOrderSubmission("submitted")
	logger.ForSession(sess.ID).Info().
		Str("order_id", receipt.OrderID).
		Int("containers", receipt.Containers).
		Int("box_count", receipt.BoxCount).
		Msg("Order submitted")
	return receipt, nil
}

// Abandon drops the session.
func (s *OrderServiceImpl) Abandon(_ context.Context, id string) error {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return ErrSessionNotFound
	}
	if sess.submitting {
		sess.mu.Unlock()
		return ErrSubmissionInProgress
	}
	sess.closed = true
	sess.mu.Unlock()

	s.sessions.Delete(id)
	logger.ForSession(id).Info().Msg("Order session abandoned")
	return nil
}

// CapacityClasses returns the loaded capacity table.
func (s *OrderServiceImpl) CapacityClasses() []model.CapacityClass {
	return s.capacity.Classes()
}

// SubmissionEnabled reports whether an order submitter is configured.
func (s *OrderServiceImpl) SubmissionEnabled() bool {
	return s.submitter != nil
}

// lock returns the usable session with id, locked.
func (s *OrderServiceImpl) lock(id string) (*OrderSession, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	switch {
	case sess.closed:
		sess.mu.Unlock()
		return nil, ErrSessionNotFound
	case sess.submitting:
		sess.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	return sess, nil
}

func (s *OrderServiceImpl) mutate(id, operation string, fn func(*OrderSession) (Outcome, error)) (MutationResult, error) {
	sess, err := s.lock(id)
	if err != nil {
		return MutationResult{}, err
	}
	defer sess.mu.Unlock()

	out, err := fn(sess)
	if err != nil {
		return MutationResult{}, err
	}

	metrics.RecordEngineOperation(operation, out.Label())
	if out.Accepted {
		sess.touch()
		metrics.RecordFillRatio(out.FillRatio)
	}
	return MutationResult{Outcome: out, Order: sess.view()}, nil
}

// inspect runs fn on the usable session with id while holding its lock.
func (s *OrderServiceImpl) inspect(id string, fn func(*OrderSession)) error {
	sess, err := s.lock(id)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()
	fn(sess)
	return nil
}

// reject records a route rejection as the outcome of operation, or returns err.
func (s *OrderServiceImpl) reject(id, operation string, out Outcome, err error) (MutationResult, error) {
	if err != nil {
		return MutationResult{}, err
	}
	return s.mutate(id, operation, func(*OrderSession) (Outcome, error) {
		return out, nil
	})
}

// route is a container configuration the destination catalog must accept.
type route struct {
	destinationID string
	mode          model.TransportMode
	size          string
	refrigerated  bool
}

func routeOf(c *model.Container) route {
	return route{c.DestinationID, c.TransportMode, c.Capacity.Size, c.Capacity.Refrigerated}
}

// checkRoute asks the destination catalog whether r is accepted. Without a
// catalog every route is accepted.
func (s *OrderServiceImpl) checkRoute(ctx context.Context, slot int, r route) (Outcome, error) {
	if s.destinations == nil {
		return accepted(slot), nil
	}
	ok, err := s.destinations.Supports(ctx, r.destinationID, r.mode, r.size, r.refrigerated)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrDestinationLookup, err)
	}
	if !ok {
		key := model.CapacityKey{Size: r.size, Refrigerated: r.refrigerated}
		return rejected(slot, ReasonConfigurationError, "destination %s does not accept %s containers by %s",
			r.destinationID, key, r.mode), nil
	}
	return accepted(slot), nil
}

func validateSpec(spec model.ContainerSpec) (Outcome, bool) {
	switch {
	case spec.Size == "":
		return rejected(0, ReasonInvalidArgument, "container size is required"), false
	case !spec.TransportMode.Valid():
		return rejected(0, ReasonInvalidArgument, "unknown transport mode %q", spec.TransportMode), false
	case spec.DestinationID == "":
		return rejected(0, ReasonInvalidArgument, "destination id is required"), false
	}
	return accepted(0), true
}
