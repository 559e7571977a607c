package image

import (
	"errors"
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	p := NewPool(2)
	buf, err := p.Get(100)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 100 || cap(buf) != 128 {
		t.Fatalf("len %d cap %d", len(buf), cap(buf))
	}
	buf[5] = 42
	p.Put(buf)
	if p.InUse() != 0 {
		t.Errorf("InUse after Put = %d", p.InUse())
	}
	again, _ := p.Get(120)
	if &again[0] != &buf[0] {
		t.Error("buffer not reused within its size class")
	}
	if again[5] != 0 {
		t.Error("reused buffer not cleared")
	}
}

func TestPool_Limit(t *testing.T) {
	p := NewPool(0)
	p.SetLimit(1024)
	a, err := p.Get(200) // 256 words, 1024 bytes
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Get(1); !errors.Is(err, ErrScratchExhausted) {
		t.Fatalf("over-limit err = %v", err)
	}
	p.Put(a)
	if _, err := p.Get(1); err != nil {
		t.Errorf("Get after Put: %v", err)
	}
}

func TestPool_ForeignBuffer(t *testing.T) {
	p := NewPool(4)
	p.Put(make([]uint32, 10, 10))
	if p.InUse() != 0 {
		t.Errorf("InUse went negative: %d", p.InUse())
	}
	buf, _ := p.Get(10)
	if cap(buf) != 16 {
		t.Errorf("foreign buffer reused: cap %d", cap(buf))
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := NewPool(8)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				buf, err := p.Get(16 + i)
				if err != nil {
					t.Error(err)
					return
				}
				p.Put(buf)
			}
		}()
	}
	wg.Wait()
	if p.InUse() != 0 {
		t.Errorf("InUse = %d", p.InUse())
	}
}
