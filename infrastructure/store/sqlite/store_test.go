package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"multistore-products-api/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "sources.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func testSources() []domain.Source {
	return []domain.Source{
		{
			ID:             "s1",
			Name:           "Store One",
			BaseURL:        "https://one.example.com",
			APIVersion:     "wc/v3",
			ConsumerKey:    "ck_one",
			ConsumerSecret: "cs_one",
			Enabled:        true,
		},
		{
			ID:             "s2",
			Name:           "Store Two",
			BaseURL:        "https://two.example.com",
			APIVersion:     "wc/v2",
			ConsumerKey:    "ck_two",
			ConsumerSecret: "cs_two",
			Enabled:        false,
		},
	}
}

func TestStore_List_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	sources, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if sources == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(sources) != 0 {
		t.Errorf("expected no sources, got %d", len(sources))
	}
}

func TestStore_ReplaceAndList_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, testSources()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	sources, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}

	first := sources[0]
	if first.ID != "s1" || first.Name != "Store One" || first.BaseURL != "https://one.example.com" {
		t.Errorf("first source fields wrong: %+v", first)
	}
	if first.ConsumerKey != "ck_one" || first.ConsumerSecret != "cs_one" {
		t.Errorf("first source credentials wrong: %+v", first)
	}
	if !first.Enabled {
		t.Error("first source should be enabled")
	}
	if sources[1].Enabled {
		t.Error("second source should be disabled")
	}
}

func TestStore_List_PreservesStoredOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ordered := []domain.Source{
		{ID: "z", Name: "Z", BaseURL: "https://z.example.com", APIVersion: "wc/v3", ConsumerKey: "ck", ConsumerSecret: "cs", Enabled: true},
		{ID: "a", Name: "A", BaseURL: "https://a.example.com", APIVersion: "wc/v3", ConsumerKey: "ck", ConsumerSecret: "cs", Enabled: true},
		{ID: "m", Name: "M", BaseURL: "https://m.example.com", APIVersion: "wc/v3", ConsumerKey: "ck", ConsumerSecret: "cs", Enabled: true},
	}
	if err := store.Replace(ctx, ordered); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	sources, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"z", "a", "m"}
	for i, id := range want {
		if sources[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, sources[i].ID, id)
		}
	}
}

func TestStore_Replace_DropsPreviousConfiguration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, testSources()); err != nil {
		t.Fatalf("first Replace failed: %v", err)
	}

	replacement := []domain.Source{
		{ID: "s3", Name: "Store Three", BaseURL: "https://three.example.com", APIVersion: "wc/v3", ConsumerKey: "ck", ConsumerSecret: "cs", Enabled: true},
	}
	if err := store.Replace(ctx, replacement); err != nil {
		t.Fatalf("second Replace failed: %v", err)
	}

	sources, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sources) != 1 || sources[0].ID != "s3" {
		t.Errorf("expected only s3 after replace, got %+v", sources)
	}
}

func TestStore_Replace_EmptyListClears(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, testSources()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := store.Replace(ctx, nil); err != nil {
		t.Fatalf("Replace with empty list failed: %v", err)
	}

	sources, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("expected empty configuration, got %d sources", len(sources))
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.db")
	ctx := context.Background()

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Replace(ctx, testSources()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	sources, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("List after reopen failed: %v", err)
	}
	if len(sources) != 2 {
		t.Errorf("expected configuration to survive reopen, got %d sources", len(sources))
	}
}
