package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
)

func TestKey(t *testing.T) {
	k := Key("abc", "ke paso")
	if !strings.HasPrefix(k, KeyPrefix+"abc:") {
		t.Errorf("Key = %q, want prefix %q", k, KeyPrefix+"abc:")
	}
	if Key("abc", "ke paso") != k {
		t.Error("Key is not deterministic")
	}
	if Key("abd", "ke paso") == k {
		t.Error("fingerprint does not change the key")
	}
	if Key("abc", "ke pasó") == k {
		t.Error("text does not change the key")
	}
	// The separator keeps (fingerprint, text) pairs from colliding.
	if Key("ab", "cx") == Key("abc", "x") {
		t.Error("ambiguous key concatenation")
	}
}

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory(0, 0)
	ctx := context.Background()
	res := corrector.Result{
		Original:  "ke",
		Corrected: "que",
		Changes:   []corrector.Change{{Category: corrector.CategorySpecialCase, Before: "ke", After: "que"}},
	}

	if _, ok, err := m.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("Get on empty cache = %v, %v", ok, err)
	}
	if err := m.Set(ctx, "k", res); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Corrected != "que" || len(got.Changes) != 1 {
		t.Errorf("Get = %+v", got)
	}
}

func TestMemory_TTL(t *testing.T) {
	m := NewMemory(10, time.Minute)
	now := time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	m.Set(ctx, "k", corrector.Result{Corrected: "x"})
	now = now.Add(59 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Error("entry expired too early")
	}
	now = now.Add(time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("entry still served after ttl")
	}
}

func TestMemory_Bounded(t *testing.T) {
	m := NewMemory(3, 0)
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c", "d"} {
		m.Set(ctx, k, corrector.Result{Corrected: k})
		if m.Len() > 3 {
			t.Fatalf("Len = %d after %s, want <= 3", m.Len(), k)
		}
	}
	if _, ok, _ := m.Get(ctx, "d"); !ok {
		t.Error("latest entry missing")
	}
	// Overwriting an existing key never evicts.
	m.Set(ctx, "d", corrector.Result{Corrected: "dd"})
	if got, _, _ := m.Get(ctx, "d"); got.Corrected != "dd" {
		t.Errorf("overwrite = %q", got.Corrected)
	}
}

func TestRedis_Unreachable(t *testing.T) {
	r := NewRedis(RedisConfig{Addr: "127.0.0.1:1", TTL: time.Minute})
	defer r.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.Ping(ctx); err == nil {
		t.Error("Ping: expected error for unreachable server")
	}
	if _, ok, err := r.Get(ctx, "k"); err == nil || ok {
		t.Errorf("Get = %v, %v, want error", ok, err)
	}
}

var (
	_ Cache = (*Memory)(nil)
	_ Cache = (*Redis)(nil)
)
