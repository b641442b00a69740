package cache

import (
	"sync"
	"testing"
)

func TestMemo_Get(t *testing.T) {
	var c Memo[int, int]
	calls := 0
	square := func(k int) int {
		calls++
		return k * k
	}

	if got := c.Get(3, square); got != 9 {
		t.Errorf("Get(3) = %d, want 9", got)
	}
	if got := c.Get(3, square); got != 9 {
		t.Errorf("Get(3) second call = %d, want 9", got)
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestMemo_Bounded(t *testing.T) {
	c := Memo[int, int]{Size: 8}
	for i := 0; i < 100; i++ {
		c.Get(i, func(k int) int { return k })
	}
	if n := c.Len(); n > 8 {
		t.Errorf("Len() = %d, want <= 8", n)
	}

	c.Flush()
	if n := c.Len(); n != 0 {
		t.Errorf("Len() after Flush = %d, want 0", n)
	}
}

func TestMemo_Concurrent(t *testing.T) {
	var c Memo[int, int]
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if got := c.Get(i%50, func(k int) int { return k + 1 }); got != i%50+1 {
					t.Errorf("Get(%d) = %d, want %d", i%50, got, i%50+1)
					return
				}
			}
		}()
	}
	wg.Wait()
}
