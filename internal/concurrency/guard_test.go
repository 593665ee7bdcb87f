package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardSerializesMutations(t *testing.T) {
	guard := NewGuard()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guard.Do(func() {
				counter++
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestGuardDoReleasesOnPanic(t *testing.T) {
	guard := NewGuard()

	assert.Panics(t, func() {
		guard.Do(func() {
			panic("boom")
		})
	})

	// The guard must be free again after the panic.
	done := make(chan struct{})
	go func() {
		guard.Do(func() {})
		close(done)
	}()
	<-done
}
