package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate() != 0.5 {
		t.Errorf("Stats() = %+v, rate %v", s, s.HitRate())
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := range 3 {
		c.Set(i, i)
	}
	c.Get(0) // 1 is now the oldest
	c.Set(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("entry 1 should have been evicted")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d missing", k)
		}
	}
	if c.Len() != 3 || c.order.Len() != 3 {
		t.Errorf("Len() = %d, list %d, want 3", c.Len(), c.order.Len())
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int { calls++; return 7 }
	for range 3 {
		if v := c.GetOrCreate("k", create); v != 7 {
			t.Fatalf("GetOrCreate = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[int, string](2)
	c.Set(1, "one")
	c.Get(1)
	c.Clear()
	if c.Len() != 0 || c.Stats().Hits != 0 {
		t.Errorf("after Clear: Len %d, Stats %+v", c.Len(), c.Stats())
	}
	c.Set(2, "two")
	if v, _ := c.Get(2); v != "two" {
		t.Errorf("Get(2) = %q after Clear", v)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (g*7 + i) % 32
				c.GetOrCreate(k, func() int { return k * 2 })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds capacity", c.Len())
	}
	for k := range 32 {
		if v, ok := c.Get(k); ok && v != k*2 {
			t.Errorf("Get(%d) = %d", k, v)
		}
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}
	for b.Loop() {
		c.Get("50")
	}
}
