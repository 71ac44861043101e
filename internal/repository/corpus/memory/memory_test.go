package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/konak-cloud/listdex/internal/domain"
	"github.com/konak-cloud/listdex/internal/domain/listing"
)

func testListing(t *testing.T, id string, status listing.Status) listing.Listing {
	t.Helper()
	l, err := listing.New(listing.Fields{
		ID:        id,
		Title:     "Listing " + id,
		Type:      listing.Apartment,
		Status:    status,
		Price:     100,
		Currency:  "USD",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("listing.New(%s): %v", id, err)
	}
	return l
}

func TestPutFetchDelete(t *testing.T) {
	ctx := context.Background()
	c := New()

	if err := c.Put(ctx, testListing(t, "p-1", listing.ForSale)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}

	out, err := c.Fetch(ctx, listing.Hint{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(out) != 1 || out[0].ID() != "p-1" {
		t.Errorf("Fetch = %v", out)
	}

	if err := c.Delete(ctx, "p-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len after delete = %d", c.Len())
	}
}

func TestDelete_Missing(t *testing.T) {
	c := New()
	if err := c.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrNotFound", err)
	}
}

func TestFetch_OrderedByID(t *testing.T) {
	c := NewFrom(
		testListing(t, "p-c", listing.ForSale),
		testListing(t, "p-a", listing.ForSale),
		testListing(t, "p-b", listing.ForSale),
	)

	out, err := c.Fetch(context.Background(), listing.Hint{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	for i, want := range []string{"p-a", "p-b", "p-c"} {
		if out[i].ID() != want {
			t.Errorf("out[%d] = %s, want %s", i, out[i].ID(), want)
		}
	}
}

func TestFetch_HonorsHints(t *testing.T) {
	c := NewFrom(
		testListing(t, "sale", listing.ForSale),
		testListing(t, "rent", listing.ForRent),
		testListing(t, "sold", listing.Sold),
	)
	ctx := context.Background()

	active, err := c.Fetch(ctx, listing.Hint{ActiveOnly: true})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("active fetch returned %d, want 2", len(active))
	}

	sold, err := c.Fetch(ctx, listing.Hint{Status: listing.Sold})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(sold) != 1 || sold[0].ID() != "sold" {
		t.Errorf("status fetch = %v", sold)
	}
}

func TestFetch_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	c := NewFrom(testListing(t, "p-1", listing.ForSale))

	snap, err := c.Fetch(ctx, listing.Hint{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := c.Delete(ctx, "p-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(snap) != 1 {
		t.Error("snapshot should survive later mutation")
	}
}
