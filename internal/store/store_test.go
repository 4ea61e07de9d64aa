package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the contract every backend must satisfy
func runStoreSuite(t *testing.T, open func(t *testing.T) Store) {
	ctx := context.Background()

	elder := func(name, nationalID string) models.Beneficiary {
		return models.BeneficiaryForm{
			Name:        name,
			Age:         70,
			NationalID:  nationalID,
			Pathologies: []string{"Hipertensión"},
			Location:    &models.Coordinate{Lat: 10.48, Lng: -66.9},
		}.Beneficiary()
	}

	t.Run("insert assigns distinct ids in insertion order", func(t *testing.T) {
		s := open(t)
		first, err := s.Beneficiaries().Insert(ctx, elder("María", "V-1"))
		require.NoError(t, err)
		second, err := s.Beneficiaries().Insert(ctx, elder("José", "V-2"))
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.False(t, first.CreatedAt.IsZero())

		rows, err := s.Beneficiaries().SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, first.ID, rows[0].ID)
		assert.Equal(t, second.ID, rows[1].ID)
		assert.Equal(t, []string{"Hipertensión"}, rows[0].Pathologies)
		assert.Equal(t, []string{}, rows[0].Medications)
		require.NotNil(t, rows[0].Location)
		assert.InDelta(t, 10.48, rows[0].Location.Lat, 1e-9)
	})

	t.Run("update replaces fields and keeps id", func(t *testing.T) {
		s := open(t)
		row, err := s.Beneficiaries().Insert(ctx, elder("María", "V-1"))
		require.NoError(t, err)

		changed := row
		changed.Name = "María Pérez"
		changed.Status = models.BeneficiaryInactive
		changed.Location = nil
		updated, err := s.Beneficiaries().Update(ctx, row.ID, changed)
		require.NoError(t, err)

		assert.Equal(t, row.ID, updated.ID)
		assert.Equal(t, "María Pérez", updated.Name)
		assert.Equal(t, models.BeneficiaryInactive, updated.Status)
		assert.Nil(t, updated.Location)
	})

	t.Run("missing rows report ErrNotFound", func(t *testing.T) {
		s := open(t)
		_, err := s.Beneficiaries().Update(ctx, "missing", elder("x", "y"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.Beneficiaries().Delete(ctx, "missing"), ErrNotFound)
		assert.ErrorIs(t, s.Activities().Delete(ctx, "missing"), ErrNotFound)
		_, err = s.Activities().CompleteRaffle(ctx, "missing", "w")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		s := open(t)
		row, err := s.Beneficiaries().Insert(ctx, elder("María", "V-1"))
		require.NoError(t, err)
		require.NoError(t, s.Beneficiaries().Delete(ctx, row.ID))

		rows, err := s.Beneficiaries().SelectAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("nutrition batch touches only the given ids", func(t *testing.T) {
		s := open(t)
		a, _ := s.Beneficiaries().Insert(ctx, elder("A", "1"))
		b, _ := s.Beneficiaries().Insert(ctx, elder("B", "2"))
		c, _ := s.Beneficiaries().Insert(ctx, elder("C", "3"))

		require.NoError(t, s.Beneficiaries().SetNutritionFlag(ctx, []string{a.ID, c.ID, "unknown"}, true))
		require.NoError(t, s.Beneficiaries().SetNutritionFlag(ctx, nil, false))

		rows, err := s.Beneficiaries().SelectAll(ctx)
		require.NoError(t, err)
		flags := map[string]bool{}
		for _, r := range rows {
			flags[r.ID] = r.NutritionBeneficiary
		}
		assert.Equal(t, map[string]bool{a.ID: true, b.ID: false, c.ID: true}, flags)
	})

	t.Run("raffle completes exactly once", func(t *testing.T) {
		s := open(t)
		raffle, err := s.Activities().Insert(ctx, models.Activity{
			Type:         models.ActivityRaffle,
			Title:        "Rifa",
			Prize:        "Cesta",
			Date:         "2025-07-30",
			Participants: []string{"p1", "p2"},
			Status:       models.StatusActive,
		})
		require.NoError(t, err)
		assert.Nil(t, raffle.WinnerID)

		done, err := s.Activities().CompleteRaffle(ctx, raffle.ID, "p2")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, done.Status)
		require.NotNil(t, done.WinnerID)
		assert.Equal(t, "p2", *done.WinnerID)
		assert.Equal(t, []string{"p1", "p2"}, done.Participants)

		_, err = s.Activities().CompleteRaffle(ctx, raffle.ID, "p1")
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("activity update round trips both variants", func(t *testing.T) {
		s := open(t)
		cultural, err := s.Activities().Insert(ctx, models.CulturalActivityForm{
			Title:    "Taller",
			Date:     "2025-07-15",
			Time:     "10:00",
			Location: "Casa de la Cultura",
		}.ActivityForm().Activity(models.ActivityCultural))
		require.NoError(t, err)
		assert.Equal(t, []string{}, cultural.Participants)

		cultural.Participants = []string{"p1", "p1"}
		cultural.Status = models.StatusCompleted
		updated, err := s.Activities().Update(ctx, cultural.ID, cultural)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p1"}, updated.Participants)
		assert.Equal(t, models.ActivityCultural, updated.Type)
		assert.Equal(t, "10:00", updated.Time)

		rows, err := s.Activities().SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, models.StatusCompleted, rows[0].Status)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store { return NewMemory() })
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close(context.Background()) })
		return s
	})
}

func TestMongoStore(t *testing.T) {
	db := testutil.MongoDatabase(t)
	n := 0
	runStoreSuite(t, func(t *testing.T) Store {
		n++
		suffix := string(rune('a' + n))
		return NewMongoStore(db, "beneficiaries_"+suffix, "activities_"+suffix)
	})
}

func TestMongoStore_CloseKeepsSharedClient(t *testing.T) {
	db := testutil.MongoDatabase(t)
	ctx := context.Background()

	s := NewMongoStore(db, "beneficiaries_close", "activities_close")
	require.NoError(t, s.Close(ctx))
	assert.NoError(t, db.Client().Ping(ctx, nil))

	_, err := s.Beneficiaries().SelectAll(ctx)
	assert.NoError(t, err)
}

func TestInstrumentedStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store { return Instrument(NewMemory(), "memory") })
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}

func TestMemory_FailureInjection(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	boom := errors.New("boom")

	m.Fail(TableBeneficiaries, "insert", boom)
	_, err := m.Beneficiaries().Insert(ctx, models.Beneficiary{Name: "x"})
	assert.ErrorIs(t, err, boom)

	m.ClearFailures()
	_, err = m.Beneficiaries().Insert(ctx, models.Beneficiary{Name: "x"})
	assert.NoError(t, err)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Seed([]models.Beneficiary{{Name: "A", Pathologies: []string{"x"}}}, nil)

	rows, err := m.Beneficiaries().SelectAll(ctx)
	require.NoError(t, err)
	rows[0].Pathologies[0] = "mutated"

	again, err := m.Beneficiaries().SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", again[0].Pathologies[0])
	assert.Equal(t, "1", again[0].ID)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemory().Activities().SelectAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
