package profile

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
)

func testFields(name string) Fields {
	return Fields{
		Name:        name,
		Description: "Engineer",
		Image:       "https://example.com/" + name + ".jpg",
		Address:     "Koramangala, Bangalore",
		Coordinates: Coordinates{Latitude: 12.9716, Longitude: 77.6246},
		Interests:   []string{"Go", "Maps"},
		Contact:     Contact{Email: name + "@example.com", Phone: "+91 98765 43210"},
	}
}

func TestAddOnEmptyStoreAssignsIDOne(t *testing.T) {
	store := NewMemoryStore()

	p := store.Add(context.Background(), testFields("a"))

	if p.ID != 1 {
		t.Fatalf("expected id 1, got %d", p.ID)
	}
	if got := store.List(context.Background()); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected list %+v", got)
	}
}

func TestAddAssignsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, name := range []string{"a", "b", "c"} {
		store.Add(ctx, testFields(name))
	}
	if err := store.Remove(ctx, 2); err != nil {
		t.Fatalf("remove: %v", err)
	}

	p := store.Add(ctx, testFields("d"))
	if p.ID != 4 {
		t.Fatalf("expected id 4 after removing a middle record, got %d", p.ID)
	}

	if err := store.Remove(ctx, 4); err != nil {
		t.Fatalf("remove: %v", err)
	}
	p = store.Add(ctx, testFields("e"))
	if p.ID != 4 {
		t.Fatalf("expected id to follow the current max (3), got %d", p.ID)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, name := range []string{"c", "a", "b"} {
		store.Add(ctx, testFields(name))
	}

	var names []string
	for _, p := range store.List(ctx) {
		names = append(names, p.Name)
	}
	if !slices.Equal(names, []string{"c", "a", "b"}) {
		t.Fatalf("unexpected order %v", names)
	}
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Add(ctx, testFields("a"))

	list := store.List(ctx)
	list[0].Name = "mutated"
	list[0].Interests[0] = "mutated"

	p, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "a" || p.Interests[0] != "Go" {
		t.Fatalf("store was mutated through List: %+v", p)
	}
}

func TestAddCopiesInterests(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	fields := testFields("a")

	store.Add(ctx, fields)
	fields.Interests[0] = "mutated"

	p, _ := store.Get(ctx, 1)
	if p.Interests[0] != "Go" {
		t.Fatalf("store shares caller's slice: %v", p.Interests)
	}
}

func TestUpdateReplacesFieldsAndKeepsID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Add(ctx, testFields("a"))
	store.Add(ctx, testFields("b"))

	next := Fields{
		Name:        "Renamed",
		Description: "Designer",
		Image:       "https://example.com/new.jpg",
		Address:     "Bandra West, Mumbai",
		Coordinates: Coordinates{Latitude: 19.0596, Longitude: 72.8295},
		Interests:   []string{"Art", "Art"},
		Contact:     Contact{Email: "new@example.com", Phone: "+91 1"},
	}
	p, err := store.Update(ctx, 2, next)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := Profile{
		ID:          2,
		Name:        next.Name,
		Description: next.Description,
		Image:       next.Image,
		Address:     next.Address,
		Coordinates: next.Coordinates,
		Interests:   next.Interests,
		Contact:     next.Contact,
	}
	got, _ := store.Get(ctx, 2)
	for _, candidate := range []Profile{p, got} {
		if candidate.ID != want.ID || candidate.Name != want.Name || candidate.Description != want.Description ||
			candidate.Image != want.Image || candidate.Address != want.Address ||
			candidate.Coordinates != want.Coordinates || candidate.Contact != want.Contact ||
			!slices.Equal(candidate.Interests, want.Interests) {
			t.Fatalf("expected %+v, got %+v", want, candidate)
		}
	}
	if list := store.List(ctx); list[1].ID != 2 {
		t.Fatalf("update changed position: %+v", list)
	}
}

func TestUpdateMissingIDFails(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Update(context.Background(), 7, testFields("a"))

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != 7 {
		t.Fatalf("expected NotFoundError for id 7, got %v", err)
	}
}

func TestRemoveIsConsistentOnMissingID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Add(ctx, testFields("a"))
	store.Add(ctx, testFields("b"))

	if err := store.Remove(ctx, 1); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Remove(ctx, 1); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound on repeated remove, got %v", err)
		}
	}
	for _, p := range store.List(ctx) {
		if p.ID == 1 {
			t.Fatal("removed profile still listed")
		}
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 profile, got %d", store.Len())
	}
}

func TestGetMissingID(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), 1)
	if err == nil || err.Error() != "profile 1 not found" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestConcurrentAddsYieldUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(ctx, testFields("x"))
		}()
	}
	wg.Wait()

	seen := map[int]bool{}
	for _, p := range store.List(ctx) {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 profiles, got %d", len(seen))
	}
}
