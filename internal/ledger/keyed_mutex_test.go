package ledger

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	km := newKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	const goroutines = 50

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			km.Lock("alice")
			counter++
			km.Unlock("alice")
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Fatalf("counter = %d, want %d", counter, goroutines)
	}
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	km.Lock("alice")
	done := make(chan struct{})
	go func() {
		// A different key must not block.
		km.Lock("bob")
		km.Unlock("bob")
		close(done)
	}()
	<-done
	km.Unlock("alice")
}

func TestKeyedMutex_UnlockUnknownKey(t *testing.T) {
	km := newKeyedMutex()
	// Unlocking a key that was never locked is a no-op.
	km.Unlock("nobody")
}
