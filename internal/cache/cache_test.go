package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/orderlex/orderlex/internal/model"
)

func TestKey(t *testing.T) {
	k1 := Key("ix xdrive50 with sunroof", "fp1")
	k2 := Key("ix xdrive50 with sunroof", "fp1")
	if k1 != k2 {
		t.Error("expected identical keys for identical inputs")
	}

	if Key("prompt a", "fp1") == Key("prompt b", "fp1") {
		t.Error("expected different keys for different prompts")
	}

	// A catalog change must invalidate earlier results
	if Key("prompt a", "fp1") == Key("prompt a", "fp2") {
		t.Error("expected different keys for different catalog fingerprints")
	}

	if !strings.HasPrefix(k1, "orderlex:v1:") {
		t.Errorf("expected versioned key prefix, got %q", k1)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, found := c.Get("k")
	if !found || string(got) != "payload" {
		t.Errorf("expected payload, got %q (found=%v)", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected miss after clear")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := Key("318i with sunroof", "fp")
	if err := c.Set(key, []byte(`{"modelCode":"28FF"}`), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("expected hit after set")
	}
	if string(got) != `{"modelCode":"28FF"}` {
		t.Errorf("unexpected payload: %s", got)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("payload"), -time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_DiskBackfill(t *testing.T) {
	dir := t.TempDir()

	// Populate via one layered cache, read through a fresh one: the
	// memory layer is empty, the disk layer serves the hit.
	first := NewLayeredCache(time.Minute, dir, time.Hour)
	if err := first.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	second := NewLayeredCache(time.Minute, dir, time.Hour)
	got, found := second.Get("k")
	if !found || string(got) != "payload" {
		t.Errorf("expected disk hit, got %q (found=%v)", got, found)
	}
}

func TestNew_Config(t *testing.T) {
	if c := New(model.CacheConfig{Enabled: false}); c != nil {
		t.Error("expected nil cache when disabled")
	}

	if c := New(model.CacheConfig{Enabled: true, MemoryTTL: time.Minute}); c == nil {
		t.Error("expected memory cache when enabled")
	}

	c := New(model.CacheConfig{Enabled: true, Dir: t.TempDir(), MemoryTTL: time.Minute, DiskTTL: time.Hour})
	if _, ok := c.(*LayeredCache); !ok {
		t.Errorf("expected layered cache when a directory is configured, got %T", c)
	}
}
