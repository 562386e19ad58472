package loyalty

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"sbtcstore.com/app/internal/storage"
)

// Order is the record handed to ProcessOrder at finalization.
type Order struct {
	OrderID         string
	Subtotal        float64
	LoyaltyDiscount float64
}

// OrderResult reports what an order did to the member's account.
type OrderResult struct {
	EarnedPoints int
	BonusPoints  int
	NewBalance   int
	Tier         Tier
	TierUpgraded bool
}

// Summary is a read-only snapshot for display.
type Summary struct {
	Balance         int
	Tier            TierInfo
	NextTier        *TierInfo
	TierProgress    float64
	PointsToNext    int
	AppliedReward   *Reward
	AppliedDiscount float64
	LastEarned      int
	Error           string
}

// Engine owns the member's point balance, ledger, tier, and the at most one
// applied reward. In-memory state is the source of truth; the store is a
// best-effort mirror written fire-and-forget and read once at restore.
type Engine struct {
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time
	saves sync.WaitGroup

	ready           bool
	balance         int
	tier            TierInfo
	entries         []Entry // newest first
	applied         *Reward
	appliedDiscount float64
	lastEarned      int
	errMsg          string
}

func NewEngine(store storage.Store) *Engine {
	return &Engine{
		store: store,
		now:   time.Now,
		tier:  Tiers[0],
	}
}

// Restore loads the persisted ledger and re-derives balance and tier from
// it. It marks the engine ready exactly once, even when the read fails or
// the data is malformed; either way the engine starts usable.
func (e *Engine) Restore(ctx context.Context) {
	entries, err := loadLedger(ctx, e.store)
	if err != nil {
		log.Printf("loyalty: restore failed, starting empty: %v", err)
		entries = nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready {
		return
	}
	e.entries = entries
	e.balance = balanceOf(entries)
	e.tier = TierForPoints(e.balance)
	e.ready = true

	if stored, err := loadBalance(ctx, e.store); err == nil && stored != e.balance {
		// Ledger sum wins; the integer key is display-only.
		log.Printf("loyalty: stored balance %d != ledger sum %d, using ledger", stored, e.balance)
	}
}

func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

func (e *Engine) Balance() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance
}

func (e *Engine) CurrentTier() TierInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tier
}

// AppliedReward returns the currently applied reward and its apply-time
// discount, if any.
func (e *Engine) AppliedReward() (Reward, float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.applied == nil {
		return Reward{}, 0, false
	}
	return *e.applied, e.appliedDiscount, true
}

// ApplyReward validates eligibility and, on success, pins the reward with
// the discount computed for the given order value. The discount is frozen
// at apply time: a later subtotal change does not re-derive it, callers
// must re-apply.
func (e *Engine) ApplyReward(rewardID string, orderValue float64) error {
	r, ok := RewardByID(rewardID)
	if !ok {
		e.setError("Reward not found")
		return ErrRewardNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ValidateRewardEligibility(r, e.balance, orderValue, e.tier.Name); err != nil {
		e.errMsg = err.Error()
		return err
	}

	e.applied = &r
	e.appliedDiscount = RewardDiscount(r, orderValue)
	e.errMsg = ""
	return nil
}

// RemoveReward clears the applied reward, its discount, and any error.
func (e *Engine) RemoveReward() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applied = nil
	e.appliedDiscount = 0
	e.errMsg = ""
}

// ProcessOrder posts the order to the ledger: redeem the applied reward,
// earn points at the pre-order tier multiplier, recompute tier, and grant
// the upgrade bonus when the tier strictly increased. Either everything
// posts or nothing does.
func (e *Engine) ProcessOrder(order Order) (OrderResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if order.OrderID == "" {
		e.errMsg = ErrProcessFailed.Error()
		return OrderResult{}, ErrProcessFailed
	}

	now := e.now()
	tierBefore := e.tier
	newBalance := e.balance
	var posted []Entry

	if e.applied != nil {
		if err := ValidateTransaction(EntryRedeemed, -e.applied.PointsCost, newBalance); err != nil {
			e.errMsg = ErrProcessFailed.Error()
			return OrderResult{}, ErrProcessFailed
		}
		posted = append(posted, Entry{
			ID:          "redeem-" + uuid.NewString(),
			Kind:        EntryRedeemed,
			Points:      -e.applied.PointsCost,
			Description: "Redeemed: " + e.applied.Name,
			OrderID:     order.OrderID,
			Timestamp:   now,
		})
		newBalance -= e.applied.PointsCost
	}

	earned := PointsEarned(order.Subtotal, tierBefore.Multiplier)
	if earned > 0 {
		expiry := PointsExpiry(now)
		posted = append(posted, Entry{
			ID:          "earn-" + uuid.NewString(),
			Kind:        EntryEarned,
			Points:      earned,
			Description: "Purchase: Order " + order.OrderID,
			OrderID:     order.OrderID,
			Timestamp:   now,
			ExpiryDate:  &expiry,
		})
		newBalance += earned
	}

	newTier := TierForPoints(newBalance)
	bonus := 0
	if tierRank(newTier.Name) > tierRank(tierBefore.Name) {
		// Upgrade bonus keys off the NEW tier's threshold.
		bonus = int(float64(newTier.MinPoints) * 0.1)
		posted = append(posted, Entry{
			ID:          "tier-bonus-" + uuid.NewString(),
			Kind:        EntryBonus,
			Points:      bonus,
			Description: "Tier Upgrade Bonus: Welcome to " + string(newTier.Name) + "!",
			Timestamp:   now,
		})
		newBalance += bonus
	}

	// Commit point: nothing above mutated engine state.
	e.entries = prepend(e.entries, posted...)
	e.balance = newBalance
	e.tier = newTier
	e.applied = nil
	e.appliedDiscount = 0
	e.lastEarned = earned
	e.errMsg = ""
	e.saveLocked()

	return OrderResult{
		EarnedPoints: earned,
		BonusPoints:  bonus,
		NewBalance:   newBalance,
		Tier:         newTier.Name,
		TierUpgraded: bonus > 0,
	}, nil
}

// AddBonusPoints posts an out-of-band BONUS entry (promotions, referrals).
func (e *Engine) AddBonusPoints(points int, description string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.entries = prepend(e.entries, Entry{
		ID:          "bonus-" + uuid.NewString(),
		Kind:        EntryBonus,
		Points:      points,
		Description: description,
		Timestamp:   e.now(),
	})
	e.balance += points
	e.saveLocked()
}

// ExpirePoints posts EXPIRED entries for earned points whose expiry has
// lapsed and returns the number of points written off.
func (e *Engine) ExpirePoints() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	done := make(map[string]bool)
	for _, en := range e.entries {
		if en.Kind == EntryExpired && en.Ref != "" {
			done[en.Ref] = true
		}
	}

	total := 0
	var posted []Entry
	for _, en := range e.entries {
		if en.Kind != EntryEarned || en.ExpiryDate == nil || done[en.ID] {
			continue
		}
		if en.ExpiryDate.After(now) {
			continue
		}
		posted = append(posted, Entry{
			ID:          "expire-" + uuid.NewString(),
			Kind:        EntryExpired,
			Points:      -en.Points,
			Description: "Points expired: " + en.Description,
			Timestamp:   now,
			Ref:         en.ID,
		})
		total += en.Points
	}
	if len(posted) == 0 {
		return 0
	}

	e.entries = prepend(e.entries, posted...)
	e.balance -= total
	e.tier = TierForPoints(e.balance)
	e.saveLocked()
	return total
}

// Refresh re-derives balance and tier strictly from persisted storage,
// recovering from a stale in-memory view.
func (e *Engine) Refresh(ctx context.Context) error {
	entries, err := loadLedger(ctx, e.store)
	if err != nil {
		e.setError("Failed to refresh loyalty data")
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = entries
	e.balance = balanceOf(entries)
	e.tier = TierForPoints(e.balance)
	e.errMsg = ""
	return nil
}

// Transactions returns the ledger, newest first.
func (e *Engine) Transactions() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Entry, len(e.entries))
	copy(out, e.entries)
	return out
}

// AvailableRewards filters the catalog down to what this member can redeem
// right now. Availability is derived, never stored.
func (e *Engine) AvailableRewards() []Reward {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Reward, 0, len(Rewards))
	for _, r := range Rewards {
		if !r.IsActive {
			continue
		}
		if e.balance < r.PointsCost {
			continue
		}
		if r.MinTier != "" && tierRank(e.tier.Name) < tierRank(r.MinTier) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// EarningPreview returns how many points an order of the given value would
// earn at the current tier.
func (e *Engine) EarningPreview(orderValue float64) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return PointsEarned(orderValue, e.tier.Multiplier)
}

func (e *Engine) Snapshot() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Summary{
		Balance:         e.balance,
		Tier:            e.tier,
		TierProgress:    TierProgress(e.balance, e.tier.Name),
		PointsToNext:    PointsToNextTier(e.balance, e.tier.Name),
		AppliedDiscount: e.appliedDiscount,
		LastEarned:      e.lastEarned,
		Error:           e.errMsg,
	}
	if next, ok := NextTier(e.tier.Name); ok {
		s.NextTier = &next
	}
	if e.applied != nil {
		r := *e.applied
		s.AppliedReward = &r
	}
	return s
}

// Flush blocks until in-flight persistence writes finish. Mutations remain
// fire-and-forget; this is for process exit and tests.
func (e *Engine) Flush() {
	e.saves.Wait()
}

func (e *Engine) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

func (e *Engine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errMsg = ""
}

func (e *Engine) setError(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errMsg = msg
}

// prepend keeps the ledger newest-first without mutating the shared slice.
func prepend(entries []Entry, posted ...Entry) []Entry {
	out := make([]Entry, 0, len(entries)+len(posted))
	out = append(out, posted...)
	out = append(out, entries...)
	return out
}
