package stockcount

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/stocktrack/stockcount-backend/pkg/errors"
	"github.com/stocktrack/stockcount-backend/pkg/logger"
	"github.com/stocktrack/stockcount-backend/pkg/metrics"
)

// Service exposes the four stock count operations.
type Service interface {
	Get(ctx context.Context, id int) (StockCount, error)
	Find(ctx context.Context, filter Filter) ([]StockCount, error)
	Start(ctx context.Context, input StartInput) (int, error)
	Report(ctx context.Context, take StockTake) (StockCount, error)
}

type service struct {
	store   *Store
	logg    *logger.Logger
	metrics *metrics.APIMetrics
}

// NewService builds a stock count service over the injected store. Metrics
// are optional; the logger and store are not.
func NewService(store *Store, logg *logger.Logger, m *metrics.APIMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("stock count store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, logg: logg, metrics: m}, nil
}

// Get returns the in-progress count with the given id.
func (s *service) Get(ctx context.Context, id int) (StockCount, error) {
	count, ok := s.store.CountByID(id)
	if !ok {
		return StockCount{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("stock count %d not found", id))
	}
	return count, nil
}

// Find returns the counts matching the filter, in insertion order. An empty
// result is a success, not an error.
func (s *service) Find(ctx context.Context, filter Filter) ([]StockCount, error) {
	return s.store.List(filter), nil
}

// Start opens a new count after resolving both reference lookups. The error
// message deliberately does not reveal which reference was unknown.
func (s *service) Start(ctx context.Context, input StartInput) (int, error) {
	location, ok := s.store.LocationByID(input.LocationID)
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeNotAcceptable, "unknown location or product category")
	}
	category, ok := s.store.CategoryByCode(input.CategoryCode)
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeNotAcceptable, "unknown location or product category")
	}

	description := fmt.Sprintf("%s - %s", location.Name, category.Name)
	id := s.store.Add(description, location, category)

	logCtx := s.logg.WithCountID(ctx, id)
	logCtx = s.logg.WithLocationID(logCtx, location.ID)
	s.logg.Info(logCtx, "stock count started")

	return id, nil
}

// Report appends one event per submitted tag, in submission order, to the
// first in-progress count matching the take's optional location filter.
// Counts beyond the first match never receive the tags.
func (s *service) Report(ctx context.Context, take StockTake) (StockCount, error) {
	locationID := 0
	if take.LocationID != nil {
		locationID = *take.LocationID
	}

	now := time.Now().UTC()
	events := make([]RfidEvent, 0, len(take.Tags))
	for _, tag := range take.Tags {
		events = append(events, RfidEvent{
			EventID:    uuid.New(),
			LocationID: locationID,
			WorkArea:   take.WorkArea,
			TagHex:     tag.Hex,
			ReadAt:     now,
		})
	}

	count, ok := s.store.AppendToFirstMatch(take.LocationID, events)
	if !ok {
		return StockCount{}, pkgerrors.New(pkgerrors.CodeNotFound, "no stock count in progress matches the report")
	}

	s.metrics.AddTagsRead(count.Location.ID, len(events))

	logCtx := s.logg.WithCountID(ctx, count.ID)
	logCtx = s.logg.WithWorkArea(logCtx, take.WorkArea)
	logCtx = s.logg.WithField(logCtx, "tags", len(events))
	s.logg.Info(logCtx, "stock take recorded")

	return count, nil
}
