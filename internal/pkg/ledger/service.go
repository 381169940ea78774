package ledger

import (
	"context"

	"github.com/saiyam0211/inty-backend/app/models"
	"gorm.io/gorm"
)

// Service exposes the credit ledger and the unlock engine. Per (user, contact)
// state only moves Locked -> Unlocked; balances never go negative. All the
// heavy lifting is delegated to atomic repository operations so the service is
// safe to call from any number of concurrent sessions.
type Service struct {
	repo Repository
}

// NewService creates a ledger service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a ledger service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Status is what the contact UI needs to decide between "already unlocked",
// "has spare credit" and "must purchase".
type Status struct {
	Unlocked bool `json:"unlocked"`
	Balance  int  `json:"balance"`
}

// GetCredits returns the ledger row for a user, creating a zero-balance record
// on first access. No implicit credit grant happens here.
func (s *Service) GetCredits(ctx context.Context, userID string) (*models.UserCredits, error) {
	return s.repo.GetOrCreate(userID)
}

// EnsureWelcomeCredits grants the configured one-time welcome credits if the
// user has not received them yet. Safe under concurrent calls for the same
// user; exactly one grant takes effect.
func (s *Service) EnsureWelcomeCredits(ctx context.Context, userID string, amounts models.WelcomeCreditSettings) (*models.UserCredits, bool, error) {
	return s.repo.GrantWelcomeCredits(userID, amounts.Designer, amounts.Craftsman)
}

// AddCredits applies a non-negative credit delta per category. Used by the
// payment workflow after verification and by admin manual grants.
func (s *Service) AddCredits(ctx context.Context, userID string, designerDelta, craftsmanDelta int) (*models.UserCredits, error) {
	if designerDelta < 0 || craftsmanDelta < 0 {
		return nil, ErrNegativeDelta
	}
	return s.repo.AddCredits(userID, designerDelta, craftsmanDelta)
}

// ContactStatus reports whether a contact is unlocked for the user and the
// spendable balance for its category.
func (s *Service) ContactStatus(ctx context.Context, userID, contactID, contactType string) (*Status, error) {
	unlocked, err := s.repo.IsUnlocked(userID, contactID, contactType)
	if err != nil {
		return nil, err
	}
	uc, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return &Status{Unlocked: unlocked, Balance: uc.Balance(contactType)}, nil
}

// IsUnlocked reports whether the contact has been unlocked by the user.
func (s *Service) IsUnlocked(ctx context.Context, userID, contactID, contactType string) (bool, error) {
	return s.repo.IsUnlocked(userID, contactID, contactType)
}

// UnlockedContactIDs lists the contacts the user already unlocked per category.
func (s *Service) UnlockedContactIDs(ctx context.Context, userID, contactType string) ([]string, error) {
	return s.repo.UnlockedContactIDs(userID, contactType)
}

// UnlockResult is the outcome of a spend-and-unlock attempt.
type UnlockResult struct {
	Credits         *models.UserCredits
	AlreadyUnlocked bool
}

// Unlock spends one credit of the matching category to permanently reveal a
// contact. Already-unlocked contacts return success without consuming a
// credit; with no spendable credit the call fails with ErrInsufficientCredits.
// Two simultaneous attempts for the same (user, contact) decrement at most
// once: the spend and the unlock record commit as one transaction keyed by the
// unique unlock index.
func (s *Service) Unlock(ctx context.Context, userID, contactID, contactType string) (*UnlockResult, error) {
	uc, already, err := s.repo.SpendAndUnlock(userID, contactID, contactType)
	if err != nil {
		return nil, err
	}
	return &UnlockResult{Credits: uc, AlreadyUnlocked: already}, nil
}

// ListWithCredits returns a page of ledger rows for the admin back office.
func (s *Service) ListWithCredits(ctx context.Context, offset, limit int) ([]models.UserCredits, int64, error) {
	users, err := s.repo.ListWithCredits(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
