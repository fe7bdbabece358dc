package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"travel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	m := NewManager(NewStore(newMemCache(), 60), logger.NewNop())
	n := 0
	m.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return m
}

func TestManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()

	p, err := m.Login(ctx, "traveler@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "traveler", p.Name)

	_, err = m.UpdateProfile(ctx, p.ID, func(p *Profile) error {
		p.ToggleFavorite("italy")
		return nil
	})
	require.NoError(t, err)

	got, err := m.Profile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"italy"}, got.FavoriteDestinations)

	require.NoError(t, m.Logout(ctx, p.ID))
	_, err = m.Profile(ctx, p.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_LoginRejectsBadEmail(t *testing.T) {
	_, err := newTestManager().Login(context.Background(), "not-an-email", "X")
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestManager_UpdateProfile_FailedMutationNotSaved(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()
	p, err := m.Login(ctx, "a@example.com", "A")
	require.NoError(t, err)

	_, err = m.UpdateProfile(ctx, p.ID, func(p *Profile) error {
		p.Name = "changed"
		return errors.New("nope")
	})
	require.Error(t, err)

	got, err := m.Profile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestManager_UpdateProfile_UnknownSession(t *testing.T) {
	_, err := newTestManager().UpdateProfile(context.Background(), "ghost", func(*Profile) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_RecordPlanAndSaveSearch(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()
	p, err := m.Login(ctx, "a@example.com", "A")
	require.NoError(t, err)

	require.NoError(t, m.RecordPlan(ctx, p.ID, 1234567890))
	got, err := m.SaveSearch(ctx, p.ID, SavedSearch{Origin: "JFK", Destination: "NRT", DepartureDate: "2025-09-01"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1234567890"}, got.BudgetPlanIDs)
	require.Len(t, got.SavedSearches, 1)
	assert.Equal(t, "id-2", got.SavedSearches[0].ID)
	assert.False(t, got.SavedSearches[0].SavedAt.IsZero())
}

func TestManager_ConcurrentUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	m := newTestManager()
	p, err := m.Login(ctx, "a@example.com", "A")
	require.NoError(t, err)

	const workers = 40
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.NoError(t, m.RecordPlan(ctx, p.ID, int64(1000+i)))
				return
			}
			_, err := m.UpdateProfile(ctx, p.ID, func(p *Profile) error {
				p.ToggleFavorite(fmt.Sprintf("dest-%d", i))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := m.Profile(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.BudgetPlanIDs, workers/2)
	assert.Len(t, got.FavoriteDestinations, workers/2)
	assert.Empty(t, m.locks.slots)
}

func TestKeyedLock_SerializesPerKey(t *testing.T) {
	l := newKeyedLock()
	unlockA := l.lock("a")

	acquired := make(chan struct{})
	go func() {
		defer l.lock("a")()
		close(acquired)
	}()

	unlockB := l.lock("b")
	unlockB()

	select {
	case <-acquired:
		t.Fatal("second holder of key a got the lock early")
	default:
	}
	unlockA()
	<-acquired
}
