package synofoto

import (
	"errors"
	"testing"

	"syno-photo-gallery/internal/synofoto/api"
)

func TestMatchEntryCaseInsensitive(t *testing.T) {
	entries := []api.CatalogEntry{
		{ID: 1, Name: "travel"},
		{ID: 2, Name: "family"},
	}
	id, err := matchEntry("tag", "Travel", entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
}

func TestMatchEntryFirstMatchWins(t *testing.T) {
	entries := []api.CatalogEntry{
		{ID: 5, Name: "Beach"},
		{ID: 6, Name: "beach"},
	}
	id, err := matchEntry("tag", "BEACH", entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected the first matching entry (id 5), got %d", id)
	}
}

func TestMatchEntryNotFound(t *testing.T) {
	entries := []api.CatalogEntry{
		{ID: 2, Name: "zebra"},
		{ID: 1, Name: "alpha"},
		{ID: 3, Name: "mid"},
	}
	_, err := matchEntry("person", "nobody", entries)
	if err == nil {
		t.Fatal("expected a NotFoundError")
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected a NotFoundError, got %T", err)
	}
	if nfe.Kind != "person" || nfe.Label != "nobody" {
		t.Fatalf("unexpected error payload: %+v", nfe)
	}
	// Available names are reported unmodified, in the order received.
	expected := []string{"zebra", "alpha", "mid"}
	if len(nfe.Available) != len(expected) {
		t.Fatalf("expected %d available names, got %d", len(expected), len(nfe.Available))
	}
	for i := range expected {
		if nfe.Available[i] != expected[i] {
			t.Fatalf("Available[%d] should be %q, got %q", i, expected[i], nfe.Available[i])
		}
	}
}

func TestMatchEntryEmptyCatalog(t *testing.T) {
	_, err := matchEntry("tag", "anything", nil)
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected a NotFoundError, got %T", err)
	}
	if len(nfe.Available) != 0 {
		t.Fatalf("expected no available names, got %d", len(nfe.Available))
	}
}
