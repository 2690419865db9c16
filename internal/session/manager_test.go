package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/security"
)

const testSecret = "test-secret-key-that-is-at-least-32-chars"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *fakeClock) {
	t.Helper()
	m, err := NewManager(security.NewTokenManager(testSecret), ttl, nil)
	require.NoError(t, err)
	clock := &fakeClock{now: time.Now()}
	m.now = clock.Now
	return m, clock
}

func TestManager_StartAndResolve(t *testing.T) {
	m, _ := newTestManager(t, 30*time.Minute)
	ctx := context.Background()

	sess, token, err := m.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, token)

	resolved, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Same(t, sess, resolved)

	count, err := m.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(t, 30*time.Minute)
	ctx := context.Background()

	a, _, err := m.Start(ctx)
	require.NoError(t, err)
	b, _, err := m.Start(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.Do(func(ag *agency.RentalAgency) error {
		v, err := domain.NewCar("CAR001", "Toyota Camry", decimal.NewFromInt(45), domain.CarEquipment{})
		if err != nil {
			return err
		}
		return ag.AddVehicleToFleet(v)
	}))

	require.NoError(t, b.Do(func(ag *agency.RentalAgency) error {
		assert.Empty(t, ag.Fleet())
		return nil
	}))
}

func TestManager_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid token", func(t *testing.T) {
		m, _ := newTestManager(t, 30*time.Minute)
		_, err := m.Resolve(ctx, "garbage")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Ended session", func(t *testing.T) {
		m, _ := newTestManager(t, 30*time.Minute)
		sess, token, err := m.Start(ctx)
		require.NoError(t, err)
		require.NoError(t, m.End(ctx, sess.ID))

		_, err = m.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, m.End(ctx, sess.ID), ErrSessionNotFound)
	})

	t.Run("Idle session expires on access", func(t *testing.T) {
		m, clock := newTestManager(t, 30*time.Minute)
		sess, _, err := m.Start(ctx)
		require.NoError(t, err)

		clock.Advance(31 * time.Minute)
		_, err = m.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrSessionExpired)

		_, err = m.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Access keeps session alive", func(t *testing.T) {
		m, clock := newTestManager(t, 30*time.Minute)
		sess, _, err := m.Start(ctx)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			clock.Advance(20 * time.Minute)
			_, err = m.Get(ctx, sess.ID)
			require.NoError(t, err)
		}
	})

	t.Run("Zero ttl never expires", func(t *testing.T) {
		m, clock := newTestManager(t, 0)
		sess, _, err := m.Start(ctx)
		require.NoError(t, err)

		clock.Advance(1000 * time.Hour)
		_, err = m.Get(ctx, sess.ID)
		require.NoError(t, err)
	})
}

func TestManager_SweepExpired(t *testing.T) {
	m, clock := newTestManager(t, 30*time.Minute)
	ctx := context.Background()

	stale, _, err := m.Start(ctx)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	fresh, _, err := m.Start(ctx)
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)
	removed, err := m.SweepExpired(ctx, clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = m.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(ctx, fresh.ID)
	assert.NoError(t, err)

	count, err := m.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestManager_Refresh(t *testing.T) {
	m, _ := newTestManager(t, 30*time.Minute)
	ctx := context.Background()

	sess, _, err := m.Start(ctx)
	require.NoError(t, err)

	token, err := m.Refresh(sess)
	require.NoError(t, err)

	resolved, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)
}

func TestManager_Factory(t *testing.T) {
	calls := 0
	m, err := NewManager(security.NewTokenManager(testSecret), time.Minute, func() *agency.RentalAgency {
		calls++
		return agency.New()
	})
	require.NoError(t, err)

	_, _, err = m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSession_DoSerializesAccess(t *testing.T) {
	sess := New("s1", agency.New())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = sess.Do(func(a *agency.RentalAgency) error {
				c, err := domain.NewCustomer("C"+string(rune('A'+i)), "Customer")
				if err != nil {
					return err
				}
				return a.AddCustomer(c)
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, sess.Do(func(a *agency.RentalAgency) error {
		assert.Len(t, a.Customers(), 20)
		return nil
	}))
}

func TestContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	sess := New("s1", agency.New())
	got, err := FromContext(NewContext(context.Background(), sess))
	require.NoError(t, err)
	assert.Same(t, sess, got)
}
