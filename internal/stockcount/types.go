package stockcount

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical site counts are run against. Immutable after seeding.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductCategory is a merchandising category reference. Immutable after seeding.
type ProductCategory struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// StockCount is one in-progress inventory counting session.
type StockCount struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Location    Location        `json:"location"`
	Category    ProductCategory `json:"category"`
	Events      []RfidEvent     `json:"events"`
}

// RfidEvent is a single scanned tag reading recorded against a count.
// Append-only once created.
type RfidEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	LocationID int       `json:"location_id"`
	WorkArea   string    `json:"work_area"`
	TagHex     string    `json:"tag_hex"`
	ReadAt     time.Time `json:"read_at"`
}

// TagRead is one hex-encoded RFID tag value in a reader submission.
type TagRead struct {
	Hex string
}

// StockTake is one reader submission: an optional location filter, the work
// area the reads came from, and the scanned tags in read order.
type StockTake struct {
	LocationID *int
	WorkArea   string
	Tags       []TagRead
}

// Filter narrows the in-progress collection. Nil fields mean no restriction
// on that dimension; set fields combine with logical AND.
type Filter struct {
	LocationID   *int
	CategoryCode *string
}

// StartInput carries the reference identifiers required to open a new count.
type StartInput struct {
	LocationID   int
	CategoryCode string
}
