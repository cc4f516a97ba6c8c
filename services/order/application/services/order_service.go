package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/pkg/logger"
	orderdomain "github.com/ghuser/ordersvc/services/order/domain"
	"github.com/ghuser/ordersvc/services/order/domain/models"
	"github.com/ghuser/ordersvc/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/ordersvc/services/order/domain/services"
)

const cacheWarmTimeout = 2 * time.Second

// CustomerReader loads the customer an order is placed for.
type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
}

// OrderService orchestrates order placement and retrieval.
// Writes run through the OrderProcessor before they reach the repository,
// which publishes order.placed in the same transaction.
// Reads are served from the Redis read model when one is configured.
type OrderService struct {
	orders    repositories.OrderRepository
	customers CustomerReader
	processor *domainsvcs.OrderProcessor
	cache     ReadModel
	log       logger.Logger
	tracer    trace.Tracer
	metrics   *pipelineMetrics
	warming   sync.WaitGroup
}

// Option configures an OrderService.
type Option func(*serviceOptions)

type serviceOptions struct {
	cache ReadModel
	log   logger.Logger
	mp    metric.MeterProvider
	tp    trace.TracerProvider
}

// WithReadModel enables read-through caching of GetByID.
func WithReadModel(c ReadModel) Option {
	return func(o *serviceOptions) { o.cache = c }
}

func WithLogger(l logger.Logger) Option {
	return func(o *serviceOptions) { o.log = l }
}

// WithMeterProvider overrides the global OTel meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *serviceOptions) { o.mp = mp }
}

// WithTracerProvider overrides the global OTel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *serviceOptions) { o.tp = tp }
}

func NewOrderService(
	orders repositories.OrderRepository,
	customers CustomerReader,
	processor *domainsvcs.OrderProcessor,
	opts ...Option,
) *OrderService {
	o := serviceOptions{
		log: logger.Discard(),
		mp:  otel.GetMeterProvider(),
		tp:  otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &OrderService{
		orders:    orders,
		customers: customers,
		processor: processor,
		cache:     o.cache,
		log:       o.log,
		tracer:    o.tp.Tracer(instrumentationName),
		metrics:   newPipelineMetrics(o.mp),
	}
}

// List returns ErrNoOrdersFound when there are no orders.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, orderdomain.ErrNoOrdersFound
	}
	return orders, nil
}

// GetByID retrieves an Order using a read-through cache pattern:
//  1. Check the read model first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return fromCached(cached), nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WarnContext(ctx, "order cache read failed", "order_id", id, "error", err)
		}
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if s.cache != nil {
		entry := toCached(order)
		s.warming.Add(1)
		go func() {
			defer s.warming.Done()
			wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWarmTimeout)
			defer cancel()
			if err := s.warm(wctx, entry); err != nil {
				s.log.WarnContext(wctx, "order cache warm failed", "order_id", entry.ID, "error", err)
			}
		}()
	}

	return order, nil
}

// Warm caches the current Postgres state of order id. An order that no longer
// exists is evicted instead.
func (s *OrderService) Warm(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	order, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, domainerr.ErrResourceNotFound) {
		s.evict(ctx, id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	return s.warm(ctx, toCached(order))
}

// warm writes entry and then re-reads the order. Writers evict only after
// their database change, so a save or delete that raced this write is seen by
// the re-read and the entry is dropped.
func (s *OrderService) warm(ctx context.Context, entry *cache.CachedOrder) error {
	if err := s.cache.Set(ctx, entry); err != nil {
		return fmt.Errorf("cache order: %w", err)
	}
	current, err := s.orders.GetByID(ctx, entry.ID)
	if err != nil {
		s.evict(ctx, entry.ID)
		if errors.Is(err, domainerr.ErrResourceNotFound) {
			return nil
		}
		return fmt.Errorf("recheck order: %w", err)
	}
	if !sameSnapshot(entry, toCached(current)) {
		s.evict(ctx, entry.ID)
	}
	return nil
}

// Create places a new order for customerID with the given items.
// A zero customerID means no customer was given.
func (s *OrderService) Create(ctx context.Context, customerID int64, items []*models.Item) (*models.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create")
	defer span.End()

	customer, err := s.loadCustomer(ctx, customerID)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	order := models.NewOrder(customer, items)
	if err := s.place(ctx, order); err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order.id", order.ID))
	return order, nil
}

// Update replaces order id wholesale with the given customer and items and
// runs the result through the pipeline again.
func (s *OrderService) Update(ctx context.Context, id, customerID int64, items []*models.Item) (*models.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("get order: %w", err)
	}

	customer, err := s.loadCustomer(ctx, customerID)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	existing.ReplaceWith(models.NewOrder(customer, items))
	if err := s.place(ctx, existing); err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return existing, nil
}

// Reprocess runs an already loaded order through the pipeline and saves it.
// Item removal uses it after detaching the item.
func (s *OrderService) Reprocess(ctx context.Context, order *models.Order) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Reprocess")
	defer span.End()

	if order != nil {
		span.SetAttributes(attribute.Int64("order.id", order.ID))
	}
	if err := s.place(ctx, order); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

// Delete fails with a not-found error for unknown ids.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	exists, err := s.orders.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check order: %w", err)
	}
	if !exists {
		return domainerr.NotFound(id)
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.evict(ctx, id)
	return nil
}

// Evict drops the cached read model of order id.
func (s *OrderService) Evict(ctx context.Context, id int64) {
	s.evict(ctx, id)
}

// place runs the pipeline and persists the order. Nothing is saved when the
// pipeline fails.
func (s *OrderService) place(ctx context.Context, order *models.Order) error {
	start := time.Now()
	err := s.processor.Process(ctx, order)
	s.metrics.record(ctx, start, err)
	if err != nil {
		return fmt.Errorf("process order: %w", err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	s.evict(ctx, order.ID)

	s.log.InfoContext(ctx, "order placed",
		"order_id", order.ID,
		"customer_id", order.Customer.ID,
		"total_with_discount", order.TotalWithDiscount.StringFixed(2),
	)
	return nil
}

// loadCustomer returns nil for a zero id and an unsaved reference for a
// negative one, leaving both cases to the order validator.
func (s *OrderService) loadCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	switch {
	case id == 0:
		return nil, nil
	case id < 0:
		return &models.Customer{ID: id}, nil
	}
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// EvictCustomer drops every cached order that embeds customer id.
func (s *OrderService) EvictCustomer(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeleteByCustomer(ctx, id); err != nil {
		return fmt.Errorf("evict customer orders: %w", err)
	}
	return nil
}

func (s *OrderService) evict(ctx context.Context, id int64) {
	if s.cache == nil || id == 0 {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "order cache evict failed", "order_id", id, "error", err)
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
