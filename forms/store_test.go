package forms

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(time.Minute)

	snap := s.Open(KindReservation, Fields{"nombre": "Ana"}, nil)
	require.NotEmpty(t, snap.ID)
	assert.Equal(t, KindReservation, snap.Kind)

	got, err := s.Do(snap.ID, func(c *Controller) *bool {
		c.SetField("nombre", "Ana Maria")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Values["nombre"])
	assert.Nil(t, got.Valid)

	got, err = s.Do(snap.ID, func(c *Controller) *bool {
		ok := c.Validate()
		return &ok
	})
	require.NoError(t, err)
	require.NotNil(t, got.Valid)
	assert.True(t, *got.Valid)

	require.NoError(t, s.Close(snap.ID))
	_, err = s.Get(snap.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.Close(snap.ID), ErrSessionNotFound)
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(10 * time.Minute)
	s.now = func() time.Time { return now }

	idle := s.Open(KindReservation, Fields{}, nil)
	now = now.Add(5 * time.Minute)
	active := s.Open(KindReservation, Fields{}, nil)

	now = now.Add(6 * time.Minute)
	_, err := s.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.Get(active.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestStoreSerialisesConcurrentChanges(t *testing.T) {
	s := NewStore(0)
	snap := s.Open(KindReservation, Fields{}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Do(snap.ID, func(c *Controller) *bool {
				c.SetField(string(rune('a'+i%26))+string(rune('a'+i/26)), "x")
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := s.Get(snap.ID)
	require.NoError(t, err)
	assert.Len(t, got.Values, 50)
}
