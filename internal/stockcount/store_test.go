package stockcount

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestNewStoreRejectsBrokenSeed(t *testing.T) {
	seed := Seed{
		Locations:  []Location{{ID: 1, Name: "Baldock"}, {ID: 1, Name: "Dup"}},
		Categories: []ProductCategory{{ID: 1, Code: "H71", Name: "Womens"}},
		Counts: []StockCount{
			{ID: 1, Location: Location{ID: 9}, Category: ProductCategory{Code: "H71"}},
			{ID: 1, Location: Location{ID: 1}, Category: ProductCategory{Code: "ZZ"}},
		},
	}

	_, err := NewStore(seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate location id 1")
	assert.Contains(t, err.Error(), "unknown location 9")
	assert.Contains(t, err.Error(), "duplicate stock count id 1")
	assert.Contains(t, err.Error(), `unknown category "ZZ"`)
}

func TestStoreAssignsMonotonicIDs(t *testing.T) {
	store, err := NewStore(DefaultSeed())
	require.NoError(t, err)

	loc, ok := store.LocationByID(1)
	require.True(t, ok)
	cat, ok := store.CategoryByCode("H71")
	require.True(t, ok)

	first := store.Add("Baldock - Womens", loc, cat)
	second := store.Add("Baldock - Womens", loc, cat)
	assert.Equal(t, 5, first)
	assert.Equal(t, 6, second)
}

func TestStoreListPreservesInsertionOrder(t *testing.T) {
	store, err := NewStore(DefaultSeed())
	require.NoError(t, err)

	all := store.List(Filter{})
	require.Len(t, all, 4)
	for i, count := range all {
		assert.Equal(t, i+1, count.ID)
	}

	baldock := store.List(Filter{LocationID: intPtr(1)})
	require.Len(t, baldock, 2)
	assert.Equal(t, 1, baldock[0].ID)
	assert.Equal(t, 3, baldock[1].ID)

	both := store.List(Filter{LocationID: intPtr(1), CategoryCode: strPtr("H72")})
	require.Len(t, both, 1)
	assert.Equal(t, 3, both[0].ID)

	none := store.List(Filter{LocationID: intPtr(99)})
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStoreAppendToFirstMatchOnly(t *testing.T) {
	store, err := NewStore(DefaultSeed())
	require.NoError(t, err)

	events := []RfidEvent{
		{EventID: uuid.New(), LocationID: 1, WorkArea: "Backroom", TagHex: "AF3C1"},
		{EventID: uuid.New(), LocationID: 1, WorkArea: "Backroom", TagHex: "AF3C2"},
	}

	updated, ok := store.AppendToFirstMatch(intPtr(1), events)
	require.True(t, ok)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "AF3C1", updated.Events[0].TagHex)
	assert.Equal(t, "AF3C2", updated.Events[1].TagHex)

	// count 3 also belongs to location 1 but must not receive anything
	other, ok := store.CountByID(3)
	require.True(t, ok)
	assert.Empty(t, other.Events)
}

func TestStoreAppendToFirstMatchNoFilterHitsOldestCount(t *testing.T) {
	store, err := NewStore(DefaultSeed())
	require.NoError(t, err)

	updated, ok := store.AppendToFirstMatch(nil, []RfidEvent{{EventID: uuid.New(), TagHex: "BEEF"}})
	require.True(t, ok)
	assert.Equal(t, 1, updated.ID)
}

func TestStoreAppendToFirstMatchUnknownLocation(t *testing.T) {
	store, err := NewStore(DefaultSeed())
	require.NoError(t, err)

	_, ok := store.AppendToFirstMatch(intPtr(42), []RfidEvent{{EventID: uuid.New(), TagHex: "BEEF"}})
	assert.False(t, ok)
}

func TestStoreReturnsCopies(t *testing.T) {
	store, err := NewStore(DefaultSeed())
	require.NoError(t, err)

	count, ok := store.CountByID(1)
	require.True(t, ok)
	count.Description = "tampered"
	count.Events = append(count.Events, RfidEvent{TagHex: "DEAD"})

	fresh, ok := store.CountByID(1)
	require.True(t, ok)
	assert.Equal(t, "Baldock - Womens", fresh.Description)
	assert.Empty(t, fresh.Events)
}
