package verify

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	store := NewMemoryStore(0)

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Put(1, &Session{Flow: FlowDerivVIP, Step: StepAwaitCreationDate})
	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, StepAwaitCreationDate, sess.Step)
	assert.False(t, sess.UpdatedAt.IsZero())

	// Users are independent.
	_, ok = store.Get(2)
	assert.False(t, ok)

	store.Delete(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := NewMemoryStore(50 * time.Millisecond)

	store.Put(1, &Session{Flow: FlowMentorship})
	_, ok := store.Get(1)
	require.True(t, ok)

	time.Sleep(80 * time.Millisecond)
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore(50 * time.Millisecond)

	store.Put(1, &Session{})
	store.Put(2, &Session{})
	assert.Equal(t, 2, store.Len())

	time.Sleep(80 * time.Millisecond)
	store.Sweep()
	assert.Equal(t, 0, store.Len())
}

// A sweep running while users acquire, mutate, clear, and release the same
// session must never evict the slot out from under a held or in-progress
// lock: that would hand two goroutines different locks for one user and
// make Release fail on a lock it never took.
func TestMemoryStoreSweepConcurrentWithAcquire(t *testing.T) {
	store := NewMemoryStore(time.Nanosecond) // every session expires immediately

	done := make(chan struct{})
	var sweeper sync.WaitGroup
	sweeper.Add(1)
	go func() {
		defer sweeper.Done()
		for {
			select {
			case <-done:
				return
			default:
				store.Sweep()
			}
		}
	}()

	var inCritical atomic.Int32
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				store.Acquire(1)
				if n := inCritical.Add(1); n != 1 {
					t.Errorf("Expected exclusive access, %d goroutines inside", n)
				}
				store.Put(1, &Session{Flow: FlowDerivVIP})
				store.Delete(1)
				inCritical.Add(-1)
				store.Release(1)
			}
		}()
	}
	wg.Wait()
	close(done)
	sweeper.Wait()
}

func TestMemoryStoreConcurrentUsers(t *testing.T) {
	store := NewMemoryStore(0)

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Acquire(userID)
			defer store.Release(userID)
			store.Put(userID, &Session{Flow: FlowDerivVIP, Step: StepAwaitProof})
			sess, ok := store.Get(userID)
			if ok {
				sess.Fields.DepositAmount = float64(userID)
				store.Put(userID, sess)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	sess, ok := store.Get(7)
	require.True(t, ok)
	assert.Equal(t, 7.0, sess.Fields.DepositAmount)
}
