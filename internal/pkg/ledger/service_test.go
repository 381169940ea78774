package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/saiyam0211/inty-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository implements Repository with the same atomicity contract as
// the GORM implementation: every mutation happens under one lock, so concurrent
// callers observe either none or all of an operation's effects.
type memoryRepository struct {
	mu      sync.Mutex
	users   map[string]*models.UserCredits
	unlocks map[[3]string]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		users:   make(map[string]*models.UserCredits),
		unlocks: make(map[[3]string]bool),
	}
}

func (r *memoryRepository) get(userID string) *models.UserCredits {
	uc, ok := r.users[userID]
	if !ok {
		uc = &models.UserCredits{UserID: userID}
		r.users[userID] = uc
	}
	return uc
}

func clone(uc *models.UserCredits) *models.UserCredits {
	c := *uc
	return &c
}

func (r *memoryRepository) GetOrCreate(userID string) (*models.UserCredits, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.get(userID)), nil
}

func (r *memoryRepository) AddCredits(userID string, designerDelta, craftsmanDelta int) (*models.UserCredits, error) {
	if designerDelta < 0 || craftsmanDelta < 0 {
		return nil, ErrNegativeDelta
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	uc := r.get(userID)
	uc.DesignerCredits += designerDelta
	uc.CraftsmanCredits += craftsmanDelta
	return clone(uc), nil
}

func (r *memoryRepository) GrantWelcomeCredits(userID string, designerAmount, craftsmanAmount int) (*models.UserCredits, bool, error) {
	if designerAmount < 0 || craftsmanAmount < 0 {
		return nil, false, ErrNegativeDelta
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	uc := r.get(userID)
	if uc.ReceivedWelcomeCredits {
		return clone(uc), false, nil
	}
	uc.DesignerCredits += designerAmount
	uc.CraftsmanCredits += craftsmanAmount
	uc.ReceivedWelcomeCredits = true
	return clone(uc), true, nil
}

func (r *memoryRepository) IsUnlocked(userID, contactID, contactType string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unlocks[[3]string{userID, contactID, contactType}], nil
}

func (r *memoryRepository) UnlockedContactIDs(userID, contactType string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for key := range r.unlocks {
		if key[0] == userID && key[2] == contactType {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

func (r *memoryRepository) SpendAndUnlock(userID, contactID, contactType string) (*models.UserCredits, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	uc := r.get(userID)
	key := [3]string{userID, contactID, contactType}
	if r.unlocks[key] {
		return clone(uc), true, nil
	}

	switch contactType {
	case models.ContactTypeDesigner:
		if uc.DesignerCredits < 1 {
			return nil, false, ErrInsufficientCredits
		}
		uc.DesignerCredits--
	case models.ContactTypeCraftsman:
		if uc.CraftsmanCredits < 1 {
			return nil, false, ErrInsufficientCredits
		}
		uc.CraftsmanCredits--
	default:
		return nil, false, fmt.Errorf("unknown contact type %q", contactType)
	}
	r.unlocks[key] = true
	return clone(uc), false, nil
}

func (r *memoryRepository) ListWithCredits(offset, limit int) ([]models.UserCredits, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UserCredits
	for _, uc := range r.users {
		out = append(out, *uc)
	}
	return out, nil
}

func (r *memoryRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func TestUnlockSpendsExactlyOneCredit(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, "user-1", 5, 0)
	require.NoError(t, err)

	res, err := svc.Unlock(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.False(t, res.AlreadyUnlocked)
	assert.Equal(t, 4, res.Credits.DesignerCredits)

	unlocked, err := svc.IsUnlocked(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestUnlockIsIdempotent(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, "user-1", 2, 0)
	require.NoError(t, err)

	first, err := svc.Unlock(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.False(t, first.AlreadyUnlocked)

	second, err := svc.Unlock(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.True(t, second.AlreadyUnlocked)
	assert.Equal(t, first.Credits.DesignerCredits, second.Credits.DesignerCredits)

	unlocked, err := svc.IsUnlocked(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestUnlockWithoutCredits(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := svc.Unlock(ctx, "user-1", "D1", models.ContactTypeDesigner)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	unlocked, err := svc.IsUnlocked(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.False(t, unlocked)
}

func TestUnlockWrongCategoryDoesNotSpend(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, "user-1", 3, 0)
	require.NoError(t, err)

	// Designer credits cannot pay for a craftsman contact.
	_, err = svc.Unlock(ctx, "user-1", "C1", models.ContactTypeCraftsman)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	uc, err := svc.GetCredits(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, uc.DesignerCredits)
}

// An unrecognized category must be rejected outright, never billed against
// another category's balance.
func TestUnlockUnknownCategoryRejected(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, "user-1", 3, 3)
	require.NoError(t, err)

	_, err = svc.Unlock(ctx, "user-1", "P1", "plumber")
	assert.Error(t, err)

	uc, err := svc.GetCredits(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, uc.DesignerCredits)
	assert.Equal(t, 3, uc.CraftsmanCredits)
}

func TestConcurrentUnlockSingleCredit(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, "user-1", 1, 0)
	require.NoError(t, err)

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Unlock(ctx, "user-1", "D1", models.ContactTypeDesigner)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	uc, err := svc.GetCredits(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, uc.DesignerCredits, "exactly one decrement")

	unlocked, err := svc.IsUnlocked(ctx, "user-1", "D1", models.ContactTypeDesigner)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestWelcomeCreditsGrantedExactlyOnce(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()
	amounts := models.WelcomeCreditSettings{Designer: 3, Craftsman: 3}

	const callers = 16
	var wg sync.WaitGroup
	grants := make([]bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, granted, err := svc.EnsureWelcomeCredits(ctx, "user-1", amounts)
			require.NoError(t, err)
			grants[i] = granted
		}(i)
	}
	wg.Wait()

	grantCount := 0
	for _, g := range grants {
		if g {
			grantCount++
		}
	}
	assert.Equal(t, 1, grantCount)

	uc, err := svc.GetCredits(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, uc.DesignerCredits)
	assert.Equal(t, 3, uc.CraftsmanCredits)
	assert.True(t, uc.ReceivedWelcomeCredits)
}

func TestConcurrentAddCreditsNoLostUpdates(t *testing.T) {
	svc := NewService(newMemoryRepository())
	ctx := context.Background()

	const adders = 20
	var wg sync.WaitGroup
	for i := 0; i < adders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddCredits(ctx, "user-1", 1, 2)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	uc, err := svc.GetCredits(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, adders, uc.DesignerCredits)
	assert.Equal(t, adders*2, uc.CraftsmanCredits)
}

func TestAddCreditsRejectsNegativeDelta(t *testing.T) {
	svc := NewService(newMemoryRepository())

	_, err := svc.AddCredits(context.Background(), "user-1", -1, 0)
	assert.ErrorIs(t, err, ErrNegativeDelta)
}
