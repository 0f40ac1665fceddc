package stockcount

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// Seed is the reference data and initial counts a Store starts from.
type Seed struct {
	Locations  []Location
	Categories []ProductCategory
	Counts     []StockCount
}

// Store holds the in-progress collection and the immutable reference lists.
// All access goes through the mutex; the process-wide static lists of the
// original design become one injected handle so every test gets isolation
// from a fresh store.
type Store struct {
	mu         sync.Mutex
	locations  []Location
	categories []ProductCategory
	counts     []*StockCount
	byID       map[int]*StockCount
	nextID     int
}

// NewStore validates the seed and builds a store from it. Count identifiers
// after seeding come from a monotonic counter, so ids are never reused even
// as the collection shape changes.
func NewStore(seed Seed) (*Store, error) {
	if err := validateSeed(seed); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	s := &Store{
		locations:  append([]Location(nil), seed.Locations...),
		categories: append([]ProductCategory(nil), seed.Categories...),
		byID:       make(map[int]*StockCount, len(seed.Counts)),
		nextID:     1,
	}
	for _, count := range seed.Counts {
		c := count
		c.Events = append([]RfidEvent(nil), count.Events...)
		s.counts = append(s.counts, &c)
		s.byID[c.ID] = &c
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s, nil
}

func validateSeed(seed Seed) error {
	var err error

	locationIDs := make(map[int]bool, len(seed.Locations))
	for _, loc := range seed.Locations {
		if locationIDs[loc.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate location id %d", loc.ID))
		}
		locationIDs[loc.ID] = true
	}

	categoryCodes := make(map[string]bool, len(seed.Categories))
	for _, cat := range seed.Categories {
		if categoryCodes[cat.Code] {
			err = multierr.Append(err, fmt.Errorf("duplicate category code %q", cat.Code))
		}
		categoryCodes[cat.Code] = true
	}

	countIDs := make(map[int]bool, len(seed.Counts))
	for _, count := range seed.Counts {
		if countIDs[count.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate stock count id %d", count.ID))
		}
		countIDs[count.ID] = true
		if !locationIDs[count.Location.ID] {
			err = multierr.Append(err, fmt.Errorf("stock count %d references unknown location %d", count.ID, count.Location.ID))
		}
		if !categoryCodes[count.Category.Code] {
			err = multierr.Append(err, fmt.Errorf("stock count %d references unknown category %q", count.ID, count.Category.Code))
		}
	}

	return err
}

// LocationByID looks up a seeded location.
func (s *Store) LocationByID(id int) (Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, loc := range s.locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

// CategoryByCode looks up a seeded product category.
func (s *Store) CategoryByCode(code string) (ProductCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.categories {
		if cat.Code == code {
			return cat, true
		}
	}
	return ProductCategory{}, false
}

// CountByID returns a copy of the matching in-progress count.
func (s *Store) CountByID(id int) (StockCount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count, ok := s.byID[id]
	if !ok {
		return StockCount{}, false
	}
	return copyCount(count), true
}

// List returns copies of the in-progress counts matching the filter, in
// insertion order. The result is never nil.
func (s *Store) List(filter Filter) []StockCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]StockCount, 0, len(s.counts))
	for _, count := range s.counts {
		if filter.LocationID != nil && count.Location.ID != *filter.LocationID {
			continue
		}
		if filter.CategoryCode != nil && count.Category.Code != *filter.CategoryCode {
			continue
		}
		result = append(result, copyCount(count))
	}
	return result
}

// Add appends a new in-progress count and returns its assigned id.
func (s *Store) Add(description string, location Location, category ProductCategory) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := &StockCount{
		ID:          s.nextID,
		Description: description,
		Location:    location,
		Category:    category,
	}
	s.nextID++
	s.counts = append(s.counts, count)
	s.byID[count.ID] = count
	return count.ID
}

// AppendToFirstMatch appends events, in order, to the first in-progress
// count matching the optional location filter. The count is mutated in place
// through its stored handle. Returns a copy of the updated count.
func (s *Store) AppendToFirstMatch(locationID *int, events []RfidEvent) (StockCount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, count := range s.counts {
		if locationID != nil && count.Location.ID != *locationID {
			continue
		}
		count.Events = append(count.Events, events...)
		return copyCount(count), true
	}
	return StockCount{}, false
}

func copyCount(count *StockCount) StockCount {
	c := *count
	c.Events = append([]RfidEvent(nil), count.Events...)
	return c
}
