package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "k1", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	if _, err := cache.Get(context.Background(), "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "k1", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "k1"); err == nil {
		t.Error("expected expired key to be gone")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "k1", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "k1"); err == nil {
		t.Error("deleted key still present")
	}
}

func TestMemoryCache_DeletePrefix(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "products:a", []byte("1"), time.Minute)
	cache.Set(ctx, "products:b", []byte("2"), time.Minute)
	cache.Set(ctx, "other:c", []byte("3"), time.Minute)

	if err := cache.DeletePrefix(ctx, "products:"); err != nil {
		t.Fatalf("DeletePrefix returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "products:a"); err == nil {
		t.Error("prefixed key products:a survived")
	}
	if _, err := cache.Get(ctx, "products:b"); err == nil {
		t.Error("prefixed key products:b survived")
	}
	if _, err := cache.Get(ctx, "other:c"); err != nil {
		t.Error("unrelated key was deleted")
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "k1", []byte("abc"), time.Minute)

	first, _ := cache.Get(ctx, "k1")
	first[0] = 'z'

	second, _ := cache.Get(ctx, "k1")
	if string(second) != "abc" {
		t.Errorf("cached value mutated through a returned copy: %q", second)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "k1", []byte("v"), time.Minute); err == nil {
		t.Error("Set should fail with a cancelled context")
	}
	if _, err := cache.Get(ctx, "k1"); err == nil {
		t.Error("Get should fail with a cancelled context")
	}
}
