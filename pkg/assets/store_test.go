package assets

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("")

	if err := store.Put(ctx, "hero.png", "image/png", strings.NewReader("png-bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	url, err := store.URL(ctx, "hero.png")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/assets/hero.png" {
		t.Errorf("url = %q, want /assets/hero.png", url)
	}

	contentType, data, err := store.Open("hero.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q", contentType)
	}
	if string(data) != "png-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("/media")

	if _, err := store.URL(ctx, "missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("URL error = %v, want ErrNotFound", err)
	}
	if _, _, err := store.Open("missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("")

	store.Put(ctx, "a.png", "image/png", strings.NewReader("x"))
	if err := store.Delete(ctx, "a.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.URL(ctx, "a.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted key still resolves: %v", err)
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "a.png"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestMemoryStoreCustomBasePath(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("/media")

	store.Put(ctx, "a.png", "image/png", strings.NewReader("x"))
	url, err := store.URL(ctx, "a.png")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/media/a.png" {
		t.Errorf("url = %q", url)
	}
}
