package pool

import "testing"

func TestDoubleBufferCreation(t *testing.T) {
	b := NewDoubleBuffer[int](10)
	if len(b.Front()) != 0 {
		t.Errorf("front should start empty, got %d", len(b.Front()))
	}
	if len(b.Back()) != 0 {
		t.Errorf("back should start empty, got %d", len(b.Back()))
	}
}

func TestDoubleBufferWriteToBack(t *testing.T) {
	b := NewDoubleBuffer[int](5)

	b.Append(1, 2, 3)

	if len(b.Front()) != 0 {
		t.Errorf("staged writes must not be visible via Front, got %d", len(b.Front()))
	}
	if len(b.Back()) != 3 {
		t.Errorf("expected 3 staged values, got %d", len(b.Back()))
	}
}

func TestDoubleBufferSwap(t *testing.T) {
	b := NewDoubleBuffer[int](5)

	b.Append(1, 2, 3)
	b.Swap()

	front := b.Front()
	if len(front) != 3 {
		t.Fatalf("expected 3 committed values, got %d", len(front))
	}
	for i, want := range []int{1, 2, 3} {
		if front[i] != want {
			t.Errorf("front[%d] = %d, want %d", i, front[i], want)
		}
	}

	if len(b.Back()) != 0 {
		t.Errorf("back should be fresh after swap, got %d", len(b.Back()))
	}
}

func TestDoubleBufferSequentialUpdates(t *testing.T) {
	b := NewDoubleBuffer[string](10)

	b.Append("First", "Update")
	b.Swap()
	if len(b.Front()) != 2 || b.Front()[0] != "First" {
		t.Fatalf("unexpected front after first swap: %v", b.Front())
	}

	b.Append("Second", "Update")
	b.Swap()
	if len(b.Front()) != 2 || b.Front()[0] != "Second" {
		t.Fatalf("unexpected front after second swap: %v", b.Front())
	}
}

func TestDoubleBufferMultipleSwaps(t *testing.T) {
	b := NewDoubleBuffer[uint64](8)

	for i := uint64(0); i < 5; i++ {
		b.Append(i*10, i*10+1)
		b.Swap()

		if len(b.Front()) != 2 {
			t.Fatalf("step %d: expected 2 committed values, got %d", i, len(b.Front()))
		}
		if b.Front()[0] != i*10 {
			t.Fatalf("step %d: front[0] = %d, want %d", i, b.Front()[0], i*10)
		}
	}
}

func TestDoubleBufferEmptySwap(t *testing.T) {
	b := NewDoubleBuffer[int](5)

	b.Append(1)
	b.Swap()
	b.Swap() // nothing staged

	if len(b.Front()) != 0 {
		t.Errorf("front should be empty after an empty commit, got %d", len(b.Front()))
	}
}

func TestDoubleBufferClear(t *testing.T) {
	b := NewDoubleBuffer[int](5)

	b.Append(1, 2)
	b.Swap()
	b.Append(3, 4)

	b.Clear()

	if len(b.Front()) != 0 || len(b.Back()) != 0 {
		t.Errorf("both buffers should be empty after Clear: front=%d back=%d",
			len(b.Front()), len(b.Back()))
	}
}

func TestDoubleBufferPoolUtilization(t *testing.T) {
	b := NewDoubleBuffer[int](10)

	initial := b.PoolAvailable()

	b.Append(1)
	b.Swap()

	if b.PoolAvailable() < initial {
		t.Errorf("swap should return storage to the pool: before=%d after=%d",
			initial, b.PoolAvailable())
	}
}

func TestDoubleBufferReadWhileWrite(t *testing.T) {
	b := NewDoubleBuffer[int](5)

	b.Append(1, 2)
	b.Swap()

	// Copy the committed view, then stage new writes.
	snapshot := append([]int(nil), b.Front()...)
	b.Append(3, 4)

	if len(snapshot) != 2 || snapshot[0] != 1 {
		t.Fatalf("snapshot corrupted: %v", snapshot)
	}
	if len(b.Front()) != 2 || b.Front()[0] != 1 {
		t.Fatalf("front changed while staging: %v", b.Front())
	}

	b.Swap()
	if len(b.Front()) != 2 || b.Front()[0] != 3 {
		t.Fatalf("unexpected front after swap: %v", b.Front())
	}
}

func TestDoubleBufferNoContentBleed(t *testing.T) {
	b := NewDoubleBuffer[int](4)

	// Commit several generations; each front must contain only its own step.
	for step := 0; step < 20; step++ {
		b.Append(step)
		b.Swap()

		front := b.Front()
		if len(front) != 1 || front[0] != step {
			t.Fatalf("step %d: front contains foreign content %v", step, front)
		}
	}
}

func BenchmarkDoubleBufferSwap(b *testing.B) {
	buf := NewDoubleBuffer[int](4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Append(i, i+1, i+2, i+3)
		buf.Swap()
	}
}
