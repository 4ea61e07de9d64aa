package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
)

// Memory is an in-process Store used in tests and local development.
// Failures can be injected per table and operation.
type Memory struct {
	mu            sync.Mutex
	beneficiaries []models.Beneficiary
	activities    []models.Activity
	seq           int
	now           func() time.Time
	failures      map[string]error
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		now:      func() time.Time { return time.Now().UTC() },
		failures: make(map[string]error),
	}
}

// Seed appends rows as-is, assigning ids to rows that have none.
func (m *Memory) Seed(beneficiaries []models.Beneficiary, activities []models.Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range beneficiaries {
		if b.ID == "" {
			b.ID = m.nextID()
		}
		m.beneficiaries = append(m.beneficiaries, cloneBeneficiary(b))
	}
	for _, a := range activities {
		if a.ID == "" {
			a.ID = m.nextID()
		}
		m.activities = append(m.activities, cloneActivity(a))
	}
}

// Fail makes every subsequent call of op on table return err until cleared.
// SetNutritionFlag also honors "set_nutrition.true" and "set_nutrition.false"
// to fail only one direction.
func (m *Memory) Fail(table, op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[table+"."+op] = err
}

// ClearFailures removes all injected failures
func (m *Memory) ClearFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = make(map[string]error)
}

func (m *Memory) Beneficiaries() BeneficiaryTable { return memoryBeneficiaries{m} }
func (m *Memory) Activities() ActivityTable       { return memoryActivities{m} }
func (m *Memory) Close(context.Context) error     { return nil }

func (m *Memory) nextID() string {
	m.seq++
	return strconv.Itoa(m.seq)
}

func (m *Memory) check(ctx context.Context, table, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.failures[table+"."+op]
}

type memoryBeneficiaries struct{ m *Memory }

func (t memoryBeneficiaries) SelectAll(ctx context.Context) ([]models.Beneficiary, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableBeneficiaries, "select"); err != nil {
		return nil, err
	}
	out := make([]models.Beneficiary, len(t.m.beneficiaries))
	for i, b := range t.m.beneficiaries {
		out[i] = cloneBeneficiary(b)
	}
	return out, nil
}

func (t memoryBeneficiaries) Insert(ctx context.Context, b models.Beneficiary) (models.Beneficiary, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableBeneficiaries, "insert"); err != nil {
		return models.Beneficiary{}, err
	}
	b = cloneBeneficiary(b)
	b.ID = t.m.nextID()
	b.CreatedAt = t.m.now()
	b.UpdatedAt = b.CreatedAt
	t.m.beneficiaries = append(t.m.beneficiaries, b)
	return cloneBeneficiary(b), nil
}

func (t memoryBeneficiaries) Update(ctx context.Context, id string, b models.Beneficiary) (models.Beneficiary, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableBeneficiaries, "update"); err != nil {
		return models.Beneficiary{}, err
	}
	for i, existing := range t.m.beneficiaries {
		if existing.ID != id {
			continue
		}
		b = cloneBeneficiary(b)
		b.ID = id
		b.CreatedAt = existing.CreatedAt
		b.UpdatedAt = t.m.now()
		t.m.beneficiaries[i] = b
		return cloneBeneficiary(b), nil
	}
	return models.Beneficiary{}, ErrNotFound
}

func (t memoryBeneficiaries) Delete(ctx context.Context, id string) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableBeneficiaries, "delete"); err != nil {
		return err
	}
	for i, existing := range t.m.beneficiaries {
		if existing.ID == id {
			t.m.beneficiaries = append(t.m.beneficiaries[:i], t.m.beneficiaries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (t memoryBeneficiaries) SetNutritionFlag(ctx context.Context, ids []string, flag bool) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableBeneficiaries, "set_nutrition"); err != nil {
		return err
	}
	if err := t.m.failures[TableBeneficiaries+".set_nutrition."+strconv.FormatBool(flag)]; err != nil {
		return err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	now := t.m.now()
	for i := range t.m.beneficiaries {
		if _, ok := set[t.m.beneficiaries[i].ID]; ok {
			t.m.beneficiaries[i].NutritionBeneficiary = flag
			t.m.beneficiaries[i].UpdatedAt = now
		}
	}
	return nil
}

type memoryActivities struct{ m *Memory }

func (t memoryActivities) SelectAll(ctx context.Context) ([]models.Activity, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableActivities, "select"); err != nil {
		return nil, err
	}
	out := make([]models.Activity, len(t.m.activities))
	for i, a := range t.m.activities {
		out[i] = cloneActivity(a)
	}
	return out, nil
}

func (t memoryActivities) Insert(ctx context.Context, a models.Activity) (models.Activity, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableActivities, "insert"); err != nil {
		return models.Activity{}, err
	}
	a = cloneActivity(a)
	a.ID = t.m.nextID()
	a.CreatedAt = t.m.now()
	a.UpdatedAt = a.CreatedAt
	t.m.activities = append(t.m.activities, a)
	return cloneActivity(a), nil
}

func (t memoryActivities) Update(ctx context.Context, id string, a models.Activity) (models.Activity, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableActivities, "update"); err != nil {
		return models.Activity{}, err
	}
	for i, existing := range t.m.activities {
		if existing.ID != id {
			continue
		}
		a = cloneActivity(a)
		a.ID = id
		a.CreatedAt = existing.CreatedAt
		a.UpdatedAt = t.m.now()
		t.m.activities[i] = a
		return cloneActivity(a), nil
	}
	return models.Activity{}, ErrNotFound
}

func (t memoryActivities) Delete(ctx context.Context, id string) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableActivities, "delete"); err != nil {
		return err
	}
	for i, existing := range t.m.activities {
		if existing.ID == id {
			t.m.activities = append(t.m.activities[:i], t.m.activities[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (t memoryActivities) CompleteRaffle(ctx context.Context, id, winnerID string) (models.Activity, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.check(ctx, TableActivities, "complete_raffle"); err != nil {
		return models.Activity{}, err
	}
	for i := range t.m.activities {
		a := &t.m.activities[i]
		if a.ID != id {
			continue
		}
		if a.Type != models.ActivityRaffle || a.Status != models.StatusActive {
			return models.Activity{}, ErrConflict
		}
		winner := winnerID
		a.Status = models.StatusCompleted
		a.WinnerID = &winner
		a.UpdatedAt = t.m.now()
		return cloneActivity(*a), nil
	}
	return models.Activity{}, ErrNotFound
}
