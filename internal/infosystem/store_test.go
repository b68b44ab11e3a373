package infosystem

import (
	"fmt"
	"sync"
	"testing"
)

func TestStore(t *testing.T) {
	s := NewStore[string]()

	s.Put("a", "1")
	s.Put("b", "2")
	s.Put("a", "3")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	if v, ok := s.Get("a"); !ok || v != "3" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if v, ok := s.Take("a"); !ok || v != "3" {
		t.Errorf("Take(a) = %q, %v", v, ok)
	}
	if _, ok := s.Take("a"); ok {
		t.Error("second Take should miss")
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_ConcurrentTakeOnce(t *testing.T) {
	s := NewStore[int]()
	for i := range 100 {
		s.Put(fmt.Sprint(i), i)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	taken := 0
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				if _, ok := s.Take(fmt.Sprint(i)); ok {
					mu.Lock()
					taken++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	if taken != 100 {
		t.Errorf("taken = %d, want 100", taken)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
