package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/raffle"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.July, 10, 15, 30, 0, 0, time.UTC)

var errBoom = errors.New("boom")

type recordedAudit struct {
	action     string
	resource   string
	resourceID string
}

type fakeAuditor struct {
	entries []recordedAudit
}

func (f *fakeAuditor) Record(_ context.Context, action, resource, resourceID string, _, _ interface{}, _ map[string]string) {
	f.entries = append(f.entries, recordedAudit{action: action, resource: resource, resourceID: resourceID})
}

func newTestCoordinator(t *testing.T, mem *store.Memory, opts ...Option) (*Coordinator, *Feed) {
	t.Helper()
	feed := NewFeed(20)
	base := []Option{
		WithNotifier(feed),
		WithClock(func() time.Time { return fixedNow }),
		WithSelector(raffle.NewSelector(1, 2)),
	}
	c := New(mem, nil, append(base, opts...)...)
	t.Cleanup(c.Close)
	require.NoError(t, c.LoadInitialState(context.Background()))
	return c, feed
}

func beneficiaryForm(name, nationalID string) models.BeneficiaryForm {
	return models.BeneficiaryForm{Name: name, Age: 71, NationalID: nationalID}
}

func latest(t *testing.T, feed *Feed) models.Notification {
	t.Helper()
	n, ok := feed.last()
	require.True(t, ok, "expected a notification")
	return n
}

func TestCreateBeneficiary_AppendsStoreRows(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	c, feed := newTestCoordinator(t, mem)

	first, err := c.CreateOrUpdateBeneficiary(ctx, "", beneficiaryForm("María", "V-100"))
	require.NoError(t, err)
	second, err := c.CreateOrUpdateBeneficiary(ctx, "", beneficiaryForm("José", "V-200"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	rows, err := mem.Beneficiaries().SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, c.Beneficiaries())
	assert.Equal(t, models.BeneficiaryActive, c.Beneficiaries()[0].Status)
	assert.Equal(t, []string{}, c.Beneficiaries()[0].Pathologies)
	assert.False(t, c.Editor().Open)
	assert.Equal(t, "Perfil creado", latest(t, feed).Title)
}

func TestUpdateBeneficiary_ReplacesSlot(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	c, feed := newTestCoordinator(t, mem)

	created, err := c.CreateOrUpdateBeneficiary(ctx, "", beneficiaryForm("María", "V-100"))
	require.NoError(t, err)

	form := beneficiaryForm("María Pérez", "V-100")
	form.Status = models.BeneficiaryInactive
	updated, err := c.CreateOrUpdateBeneficiary(ctx, created.ID, form)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	require.Len(t, c.Beneficiaries(), 1)
	assert.Equal(t, "María Pérez", c.Beneficiaries()[0].Name)
	assert.Equal(t, models.BeneficiaryInactive, c.Beneficiaries()[0].Status)
	assert.Equal(t, "Perfil actualizado", latest(t, feed).Title)
}

func TestUpdateBeneficiary_UnknownID(t *testing.T) {
	c, _ := newTestCoordinator(t, store.NewMemory())

	_, err := c.CreateOrUpdateBeneficiary(context.Background(), "missing", beneficiaryForm("María", "V-100"))
	assert.ErrorIs(t, err, models.ErrBeneficiaryNotFound)
}

func TestCreateBeneficiary_StoreFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	c, feed := newTestCoordinator(t, mem)

	mem.Fail(store.TableBeneficiaries, "insert", errBoom)
	_, err := c.CreateOrUpdateBeneficiary(ctx, "", beneficiaryForm("María", "V-100"))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStoreFailure)
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, c.Beneficiaries())
	assert.Equal(t, EditorState{Open: true, Kind: EditorBeneficiary}, c.Editor())

	n := latest(t, feed)
	assert.Equal(t, "Error al crear", n.Title)
	assert.Equal(t, models.VariantDestructive, n.Variant)
}

func TestCreateBeneficiary_MissingRequiredField(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	c, _ := newTestCoordinator(t, mem)

	_, err := c.CreateOrUpdateBeneficiary(ctx, "", models.BeneficiaryForm{Age: 70, NationalID: "V-1"})

	var fieldErr *models.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name", fieldErr.Field)
	assert.ErrorIs(t, err, models.ErrMissingField)

	rows, err := mem.Beneficiaries().SelectAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFilterAndStats_Scenario(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana", NationalID: "V-1", Status: models.BeneficiaryActive, NutritionBeneficiary: true},
		{ID: "2", Name: "Beto", NationalID: "V-2", Status: models.BeneficiaryInactive},
	}, nil)
	c, _ := newTestCoordinator(t, mem)

	require.NoError(t, c.SetFilterStatus(models.FilterActive))
	c.SetSearchTerm("")

	filtered := c.FilteredBeneficiaries()
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)

	stats := c.Stats()
	assert.Equal(t, 2, stats.TotalElders)
	assert.Equal(t, 1, stats.ActiveElders)
	assert.Equal(t, 1, stats.NutritionBeneficiaries)

	require.NoError(t, c.SetFilterStatus(models.FilterAll))
	assert.Len(t, c.FilteredBeneficiaries(), 2)

	require.NoError(t, c.SetFilterStatus(models.FilterInactive))
	filtered = c.FilteredBeneficiaries()
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	assert.ErrorIs(t, c.SetFilterStatus("archived"), models.ErrInvalidStatus)
}

func TestFilterBeneficiaries_MatchesNameOrNationalID(t *testing.T) {
	beneficiaries := []models.Beneficiary{
		{ID: "1", Name: "María Rodríguez", NationalID: "V-4567890", Status: models.BeneficiaryActive},
		{ID: "2", Name: "José Pérez", NationalID: "V-1234567", Status: models.BeneficiaryActive},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term matches all", term: "", want: []string{"1", "2"}},
		{name: "case-insensitive name", term: "maría", want: []string{"1"}},
		{name: "national id substring", term: "12345", want: []string{"2"}},
		{name: "no match", term: "Carlos", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, b := range FilterBeneficiaries(beneficiaries, tt.term, models.FilterAll) {
				got = append(got, b.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStats_CountsConditionsAndUpcoming(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana", Status: models.BeneficiaryActive, Pathologies: []string{"Diabetes", "Hipertensión"}, Disabilities: []string{"Visual"}},
		{ID: "2", Name: "Beto", Status: models.BeneficiaryActive, Pathologies: []string{"Artritis"}},
	}, []models.Activity{
		{ID: "a", Type: models.ActivityCultural, Date: "2025-07-10", Status: models.StatusScheduled},
		{ID: "b", Type: models.ActivityRaffle, Date: "2025-07-20", Status: models.StatusActive},
		{ID: "c", Type: models.ActivityCultural, Date: "2025-07-09", Status: models.StatusScheduled},
		{ID: "d", Type: models.ActivityCultural, Date: "2025-08-01", Status: models.StatusCompleted},
		{ID: "e", Type: models.ActivityCultural, Date: "not-a-date", Status: models.StatusScheduled},
	})
	c, _ := newTestCoordinator(t, mem)

	stats := c.Stats()
	assert.Equal(t, 3, stats.PathologiesCount)
	assert.Equal(t, 1, stats.DisabilitiesCount)
	assert.Equal(t, 2, stats.UpcomingActivities)

	conditions := c.BeneficiariesWithConditions()
	assert.Len(t, conditions, 2)
}

func TestUpcomingActivities_SortedAndLimited(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{
		{ID: "late", Type: models.ActivityCultural, Date: "2025-09-01", Status: models.StatusScheduled},
		{ID: "soon", Type: models.ActivityCultural, Date: "2025-07-11", Status: models.StatusScheduled},
		{ID: "today", Type: models.ActivityRaffle, Date: "2025-07-10", Status: models.StatusActive},
		{ID: "past", Type: models.ActivityCultural, Date: "2025-06-01", Status: models.StatusScheduled},
	})
	c, _ := newTestCoordinator(t, mem)

	upcoming := c.UpcomingActivities(0)
	ids := []string{}
	for _, a := range upcoming {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"today", "soon", "late"}, ids)

	assert.Len(t, c.UpcomingActivities(2), 2)
}

func TestCreateActivity_DefaultsStatusByKind(t *testing.T) {
	ctx := context.Background()
	c, feed := newTestCoordinator(t, store.NewMemory())

	cultural, err := c.CreateOrUpdateActivity(ctx, "", models.ActivityCultural, models.CulturalActivityForm{
		Title: "Taller de pintura", Date: "2025-07-15", Time: "10:00", Location: "Casa de la Cultura",
	}.ActivityForm())
	require.NoError(t, err)
	assert.Equal(t, models.ActivityCultural, cultural.Type)
	assert.Equal(t, models.StatusScheduled, cultural.Status)
	assert.Equal(t, []string{}, cultural.Participants)
	assert.Equal(t, "Actividad creada", latest(t, feed).Title)

	raffleRow, err := c.CreateOrUpdateActivity(ctx, "", models.ActivityRaffle, models.RaffleForm{
		Title: "Rifa", Prize: "Cesta", Date: "2025-07-30",
	}.ActivityForm())
	require.NoError(t, err)
	assert.Equal(t, models.ActivityRaffle, raffleRow.Type)
	assert.Equal(t, models.StatusActive, raffleRow.Status)
	assert.Nil(t, raffleRow.WinnerID)
	assert.Equal(t, "Rifa creada", latest(t, feed).Title)

	assert.Len(t, c.Activities(""), 2)
	assert.Len(t, c.Activities(models.ActivityRaffle), 1)
}

func TestCreateActivity_InvalidKind(t *testing.T) {
	c, _ := newTestCoordinator(t, store.NewMemory())

	_, err := c.CreateOrUpdateActivity(context.Background(), "", "bingo", models.ActivityForm{Title: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidActivityType)
}

func TestUpdateActivity_Rules(t *testing.T) {
	ctx := context.Background()
	winner := "1"
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{
		{ID: "c1", Type: models.ActivityCultural, Title: "Baile", Date: "2025-07-15", Time: "09:00", Location: "Plaza", Status: models.StatusScheduled},
		{ID: "r1", Type: models.ActivityRaffle, Title: "Rifa", Prize: "Cesta", Date: "2025-07-30", Status: models.StatusActive, Participants: []string{"1", "2"}},
		{ID: "r2", Type: models.ActivityRaffle, Title: "Rifa vieja", Prize: "Radio", Date: "2025-06-30", Status: models.StatusCompleted, Participants: []string{"1"}, WinnerID: &winner},
	})
	c, _ := newTestCoordinator(t, mem)

	t.Run("edit keeps status when form leaves it empty", func(t *testing.T) {
		updated, err := c.CreateOrUpdateActivity(ctx, "r1", models.ActivityRaffle, models.RaffleForm{
			Title: "Rifa de julio", Prize: "Cesta grande", Date: "2025-07-31", Participants: []string{"1", "2", "3"},
		}.ActivityForm())
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, updated.Status)
		assert.Equal(t, "Rifa de julio", updated.Title)
		assert.Equal(t, []string{"1", "2", "3"}, updated.Participants)
	})

	t.Run("completed raffle cannot be edited", func(t *testing.T) {
		_, err := c.CreateOrUpdateActivity(ctx, "r2", models.ActivityRaffle, models.RaffleForm{
			Title: "Otra", Prize: "Radio", Date: "2025-06-30",
		}.ActivityForm())
		assert.ErrorIs(t, err, models.ErrRaffleCompleted)
	})

	t.Run("kind cannot change", func(t *testing.T) {
		_, err := c.CreateOrUpdateActivity(ctx, "c1", models.ActivityRaffle, models.RaffleForm{
			Title: "Baile", Prize: "x", Date: "2025-07-15",
		}.ActivityForm())
		assert.ErrorIs(t, err, models.ErrActivityKindMismatch)
	})

	t.Run("cultural status can complete", func(t *testing.T) {
		form := models.CulturalActivityForm{
			Title: "Baile", Date: "2025-07-15", Time: "09:00", Location: "Plaza", Status: models.StatusCompleted,
		}
		updated, err := c.CreateOrUpdateActivity(ctx, "c1", models.ActivityCultural, form.ActivityForm())
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, updated.Status)
	})

	t.Run("store failure keeps previous row", func(t *testing.T) {
		mem.Fail(store.TableActivities, "update", errBoom)
		defer mem.ClearFailures()

		_, err := c.CreateOrUpdateActivity(ctx, "c1", models.ActivityCultural, models.CulturalActivityForm{
			Title: "Otro", Date: "2025-07-15", Time: "09:00", Location: "Plaza",
		}.ActivityForm())
		assert.ErrorIs(t, err, models.ErrStoreFailure)

		row, err := c.Activity("c1")
		require.NoError(t, err)
		assert.Equal(t, "Baile", row.Title)
		assert.Equal(t, EditorState{Open: true, Kind: EditorCultural, ID: "c1"}, c.Editor())
	})
}

func TestDeleteBeneficiary_LeavesDanglingParticipants(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana", Status: models.BeneficiaryActive},
		{ID: "2", Name: "Beto", Status: models.BeneficiaryActive},
	}, []models.Activity{
		{ID: "a", Type: models.ActivityCultural, Date: "2025-07-15", Status: models.StatusScheduled, Participants: []string{"1", "2"}},
	})
	c, feed := newTestCoordinator(t, mem)

	require.NoError(t, c.DeleteBeneficiary(ctx, "2"))
	assert.Equal(t, "Perfil eliminado", latest(t, feed).Title)

	require.Len(t, c.Beneficiaries(), 1)
	activity, err := c.Activity("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, activity.Participants)

	views, err := c.ResolveParticipants("a")
	require.NoError(t, err)
	assert.Equal(t, []models.ParticipantView{
		{ID: "1", Name: "Ana", Found: true},
		{ID: "2", Found: false},
	}, views)

	_, err = c.ResolveParticipants("missing")
	assert.ErrorIs(t, err, models.ErrActivityNotFound)
}

func TestDeleteBeneficiary_Failures(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{{ID: "1", Name: "Ana"}}, nil)
	c, _ := newTestCoordinator(t, mem)

	assert.ErrorIs(t, c.DeleteBeneficiary(ctx, "missing"), models.ErrBeneficiaryNotFound)

	mem.Fail(store.TableBeneficiaries, "delete", errBoom)
	assert.ErrorIs(t, c.DeleteBeneficiary(ctx, "1"), models.ErrStoreFailure)
	assert.Len(t, c.Beneficiaries(), 1)
}

func TestDeleteActivity(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{{ID: "a", Type: models.ActivityCultural, Status: models.StatusScheduled}})
	c, _ := newTestCoordinator(t, mem)

	require.NoError(t, c.DeleteActivity(ctx, "a"))
	assert.Empty(t, c.Activities(""))
	assert.ErrorIs(t, c.DeleteActivity(ctx, "a"), models.ErrActivityNotFound)
}

func TestDeleteActivity_AuditsByKind(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{
		{ID: "a", Type: models.ActivityCultural, Status: models.StatusScheduled},
		{ID: "r", Type: models.ActivityRaffle, Status: models.StatusActive},
	})
	auditor := &fakeAuditor{}
	c, _ := newTestCoordinator(t, mem, WithAuditor(auditor))

	require.NoError(t, c.DeleteActivity(ctx, "r"))
	require.NoError(t, c.DeleteActivity(ctx, "a"))

	require.Len(t, auditor.entries, 2)
	assert.Equal(t, recordedAudit{action: "DELETE", resource: "raffle", resourceID: "r"}, auditor.entries[0])
	assert.Equal(t, recordedAudit{action: "DELETE", resource: "activity", resourceID: "a"}, auditor.entries[1])
}

func TestDrawRaffleWinner(t *testing.T) {
	ctx := context.Background()
	participants := []string{"1", "2", "3"}
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana"}, {ID: "2", Name: "Beto"}, {ID: "3", Name: "Carla"},
	}, []models.Activity{
		{ID: "r", Type: models.ActivityRaffle, Title: "Rifa", Prize: "Cesta", Date: "2025-07-30", Status: models.StatusActive, Participants: participants},
	})
	auditor := &fakeAuditor{}
	c, feed := newTestCoordinator(t, mem, WithAuditor(auditor))

	completed, err := c.DrawRaffleWinner(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.WinnerID)
	assert.Contains(t, participants, *completed.WinnerID)

	local, err := c.Activity("r")
	require.NoError(t, err)
	assert.Equal(t, completed, local)

	n := latest(t, feed)
	assert.Equal(t, "¡Tenemos un ganador!", n.Title)
	assert.Equal(t, models.VariantSuccess, n.Variant)
	require.NotEmpty(t, auditor.entries)
	assert.Equal(t, recordedAudit{action: "DRAW", resource: "raffle", resourceID: "r"}, auditor.entries[len(auditor.entries)-1])

	_, err = c.DrawRaffleWinner(ctx, "r")
	assert.ErrorIs(t, err, models.ErrRaffleCompleted)

	rows, err := mem.Activities().SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, completed, rows[0])
}

func TestDrawRaffleWinner_Preconditions(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{
		{ID: "empty", Type: models.ActivityRaffle, Status: models.StatusActive, Participants: []string{}},
		{ID: "cultural", Type: models.ActivityCultural, Status: models.StatusScheduled, Participants: []string{"1"}},
	})
	c, feed := newTestCoordinator(t, mem)

	_, err := c.DrawRaffleWinner(ctx, "empty")
	assert.ErrorIs(t, err, models.ErrNoParticipants)
	assert.Equal(t, "No hay participantes", latest(t, feed).Title)

	_, err = c.DrawRaffleWinner(ctx, "cultural")
	assert.ErrorIs(t, err, models.ErrNotARaffle)

	_, err = c.DrawRaffleWinner(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrActivityNotFound)

	rows, err := mem.Activities().SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, rows[0].Status)
	assert.Nil(t, rows[0].WinnerID)
}

func TestDrawRaffleWinner_CompletedElsewhere(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{
		{ID: "r", Type: models.ActivityRaffle, Status: models.StatusActive, Participants: []string{"1", "2"}},
	})
	c, _ := newTestCoordinator(t, mem)

	_, err := mem.Activities().CompleteRaffle(ctx, "r", "2")
	require.NoError(t, err)

	_, err = c.DrawRaffleWinner(ctx, "r")
	assert.ErrorIs(t, err, models.ErrRaffleCompleted)

	rows, err := mem.Activities().SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", *rows[0].WinnerID)

	local, err := c.Activity("r")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, local.Status)
	require.NotNil(t, local.WinnerID)
	assert.Equal(t, "2", *local.WinnerID)

	// the refreshed row now fails the precondition without touching the store
	mem.Fail(store.TableActivities, "complete_raffle", errBoom)
	_, err = c.DrawRaffleWinner(ctx, "r")
	assert.ErrorIs(t, err, models.ErrRaffleCompleted)
	assert.NotErrorIs(t, err, models.ErrStoreFailure)
}

func TestDrawRaffleWinner_StoreFailure(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed(nil, []models.Activity{
		{ID: "r", Type: models.ActivityRaffle, Status: models.StatusActive, Participants: []string{"1"}},
	})
	c, feed := newTestCoordinator(t, mem)

	mem.Fail(store.TableActivities, "complete_raffle", errBoom)
	_, err := c.DrawRaffleWinner(ctx, "r")
	assert.ErrorIs(t, err, models.ErrStoreFailure)
	assert.Equal(t, "Error al sortear", latest(t, feed).Title)

	local, err := c.Activity("r")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, local.Status)
}

func TestSetNutritionBeneficiaries(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana", NutritionBeneficiary: true},
		{ID: "2", Name: "Beto"},
		{ID: "3", Name: "Carla", NutritionBeneficiary: true},
		{ID: "4", Name: "Dora"},
	}, nil)
	c, feed := newTestCoordinator(t, mem)

	require.NoError(t, c.SetNutritionBeneficiaries(ctx, []string{"1", "2"}))
	assert.Equal(t, "Beneficiarios actualizados", latest(t, feed).Title)

	flagged := func(rows []models.Beneficiary) []string {
		out := []string{}
		for _, b := range rows {
			if b.NutritionBeneficiary {
				out = append(out, b.ID)
			}
		}
		return out
	}

	assert.Equal(t, []string{"1", "2"}, flagged(c.Beneficiaries()))
	rows, err := mem.Beneficiaries().SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, flagged(rows))

	split := c.NutritionSplit()
	assert.Len(t, split.Enrolled, 2)
	assert.Len(t, split.NotEnrolled, 2)

	require.NoError(t, c.SetNutritionBeneficiaries(ctx, nil))
	assert.Empty(t, flagged(c.Beneficiaries()))
}

func TestSetNutritionBeneficiaries_FailureReportsWithoutReconciling(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana", NutritionBeneficiary: true},
		{ID: "2", Name: "Beto"},
	}, nil)
	c, feed := newTestCoordinator(t, mem)

	mem.Fail(store.TableBeneficiaries, "set_nutrition", errBoom)
	err := c.SetNutritionBeneficiaries(ctx, []string{"2"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStoreFailure)
	assert.Equal(t, "Error al guardar", latest(t, feed).Title)

	local := c.Beneficiaries()
	assert.True(t, local[0].NutritionBeneficiary)
	assert.False(t, local[1].NutritionBeneficiary)
}

func TestSetNutritionBeneficiaries_OneBatchFails(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana", NutritionBeneficiary: true},
		{ID: "2", Name: "Beto"},
	}, nil)
	c, feed := newTestCoordinator(t, mem)

	mem.Fail(store.TableBeneficiaries, "set_nutrition.false", errBoom)
	err := c.SetNutritionBeneficiaries(ctx, []string{"2"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStoreFailure)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "disable nutrition")
	assert.NotContains(t, err.Error(), "enable nutrition")
	assert.Equal(t, "Error al guardar", latest(t, feed).Title)

	// the enable batch is kept in the store, no rollback
	rows, err := mem.Beneficiaries().SelectAll(ctx)
	require.NoError(t, err)
	assert.True(t, rows[0].NutritionBeneficiary)
	assert.True(t, rows[1].NutritionBeneficiary)

	local := c.Beneficiaries()
	assert.True(t, local[0].NutritionBeneficiary)
	assert.False(t, local[1].NutritionBeneficiary)
}

func TestLoadInitialState_PartialFailure(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{{ID: "1", Name: "Ana"}}, []models.Activity{{ID: "a", Type: models.ActivityCultural}})
	mem.Fail(store.TableActivities, "select", errBoom)

	feed := NewFeed(10)
	c := New(mem, nil, WithNotifier(feed))
	defer c.Close()

	err := c.LoadInitialState(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStoreFailure)

	assert.Len(t, c.Beneficiaries(), 1)
	assert.Empty(t, c.Activities(""))
	assert.Equal(t, "Error al cargar Actividades", latest(t, feed).Title)
}

func TestPublicLookupAndCalendar(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{
		{ID: "1", Name: "Ana Torres", NationalID: "V-111"},
		{ID: "2", Name: "Beto Díaz", NationalID: "V-222"},
	}, []models.Activity{
		{ID: "a", Type: models.ActivityCultural, Date: "2025-07-15", Participants: []string{"2"}},
		{ID: "b", Type: models.ActivityRaffle, Date: "2025-07-15", Participants: []string{"1", "2"}},
		{ID: "c", Type: models.ActivityCultural, Date: "2025-07-02", Participants: []string{"1"}},
		{ID: "d", Type: models.ActivityCultural, Date: "2025-08-01", Participants: []string{"1"}},
	})
	c, _ := newTestCoordinator(t, mem)

	result, ok := c.PublicLookup("222")
	require.True(t, ok)
	assert.Equal(t, "2", result.Beneficiary.ID)
	require.Len(t, result.Activities, 2)
	assert.Equal(t, "a", result.Activities[0].ID)

	result, ok = c.PublicLookup("ana")
	require.True(t, ok)
	assert.Equal(t, "1", result.Beneficiary.ID)

	_, ok = c.PublicLookup("   ")
	assert.False(t, ok)
	_, ok = c.PublicLookup("Zoe")
	assert.False(t, ok)

	days := c.Calendar(2025, time.July)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-07-02", days[0].Date)
	assert.Equal(t, "2025-07-15", days[1].Date)
	assert.Len(t, days[1].Activities, 2)
}

func TestNavigationState(t *testing.T) {
	c, _ := newTestCoordinator(t, store.NewMemory())

	assert.Equal(t, models.ViewDashboard, c.CurrentView())
	require.NoError(t, c.SetView(models.ViewRaffles))
	assert.Equal(t, models.ViewRaffles, c.CurrentView())
	assert.Error(t, c.SetView("settings"))

	c.ShowLogin(true)
	assert.True(t, c.LoginVisible())

	c.OpenEditor(EditorRaffle, "r1")
	assert.Equal(t, EditorState{Open: true, Kind: EditorRaffle, ID: "r1"}, c.Editor())
	c.CloseEditor()
	assert.False(t, c.Editor().Open)
}

func TestFeed_DropsOldestBeyondSize(t *testing.T) {
	feed := NewFeed(2)
	feed.Notify(models.Notification{Title: "uno"})
	feed.Notify(models.Notification{Title: "dos", Variant: models.VariantSuccess})
	feed.Notify(models.Notification{Title: "tres", Variant: models.VariantDestructive})

	recent := feed.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "dos", recent[0].Title)
	assert.Equal(t, "tres", recent[1].Title)
	assert.False(t, recent[0].CreatedAt.IsZero())

	_, ok := NewFeed(0).last()
	assert.False(t, ok)
}

func TestNotifications_ReturnsFeedContents(t *testing.T) {
	c, _ := newTestCoordinator(t, store.NewMemory())
	_, err := c.CreateOrUpdateBeneficiary(context.Background(), "", beneficiaryForm("Rosa Díaz", "V-900"))
	require.NoError(t, err)

	notes := c.Notifications()
	require.NotEmpty(t, notes)
	assert.Equal(t, "Perfil creado", notes[len(notes)-1].Title)
}
