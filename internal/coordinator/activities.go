package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/raffle"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"go.uber.org/zap"
)

func defaultSelector() WinnerSelector {
	s, err := raffle.NewRandomSelector()
	if err != nil {
		logging.Logger.Warn("crypto seed unavailable, seeding raffle selector from clock", zap.Error(err))
		now := uint64(time.Now().UnixNano())
		return raffle.NewSelector(now, now>>1)
	}
	return s
}

func (c *Coordinator) findActivity(id string) (models.Activity, bool) {
	for _, a := range c.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

func (c *Coordinator) replaceActivity(row models.Activity) {
	for i := range c.activities {
		if c.activities[i].ID == row.ID {
			c.activities[i] = row
			return
		}
	}
}

// refreshActivity replaces the local copy of id with the stored row. Used
// after a conflicting write so the local row stops looking drawable.
func (c *Coordinator) refreshActivity(ctx context.Context, id string) {
	rows, err := c.store.Activities().SelectAll(ctx)
	if err != nil {
		c.logger.Warn("failed to refresh activity", zap.String("id", id), zap.Error(err))
		return
	}
	for _, row := range rows {
		if row.ID == id {
			c.mu.Lock()
			c.replaceActivity(row)
			c.mu.Unlock()
			return
		}
	}
}

func activityLabels(kind models.ActivityType) (editor EditorKind, resource, created, updated string) {
	if kind == models.ActivityRaffle {
		return EditorRaffle, utils.AuditResourceRaffle, "Rifa creada", "Rifa actualizada"
	}
	return EditorCultural, utils.AuditResourceActivity, "Actividad creada", "Actividad actualizada"
}

// CreateOrUpdateActivity writes a cultural activity or raffle. New records
// get the kind's default status; edits keep the kind, the winner and, when
// the form leaves it empty, the status. Completed raffles cannot be edited.
func (c *Coordinator) CreateOrUpdateActivity(ctx context.Context, id string, kind models.ActivityType, form models.ActivityForm) (models.Activity, error) {
	if !kind.Valid() {
		return models.Activity{}, models.ErrInvalidActivityType
	}
	editor, resource, createdTitle, updatedTitle := activityLabels(kind)
	c.OpenEditor(editor, id)

	if err := utils.ValidateActivityForm(kind, form).Err(); err != nil {
		c.fail("Datos incompletos", err)
		return models.Activity{}, err
	}

	row := form.Activity(kind)

	if id == "" {
		if row.Status == "" {
			row.Status = kind.DefaultStatus()
		}
		created, err := c.store.Activities().Insert(ctx, row)
		if err != nil {
			c.logger.Error("failed to create activity", zap.String("type", string(kind)), zap.Error(err))
			c.fail("Error al crear", err)
			return models.Activity{}, models.StoreError("insert activity", err)
		}

		c.mu.Lock()
		c.activities = append(c.activities, created)
		c.editor = EditorState{}
		c.mu.Unlock()

		c.auditor.Record(ctx, utils.AuditActionCreate, resource, created.ID, nil, created, nil)
		c.notify(createdTitle, "", models.VariantDefault)
		return created, nil
	}

	c.mu.RLock()
	previous, ok := c.findActivity(id)
	c.mu.RUnlock()

	var precondition error
	switch {
	case !ok:
		precondition = models.ErrActivityNotFound
	case previous.Type != kind:
		precondition = models.ErrActivityKindMismatch
	case previous.IsRaffle() && previous.Status == models.StatusCompleted:
		precondition = models.ErrRaffleCompleted
	}
	if precondition != nil {
		c.fail("Error al actualizar", precondition)
		return models.Activity{}, precondition
	}

	if row.Status == "" {
		row.Status = previous.Status
	}
	row.WinnerID = previous.WinnerID

	updated, err := c.store.Activities().Update(ctx, id, row)
	if err != nil {
		c.logger.Error("failed to update activity", zap.String("id", id), zap.Error(err))
		c.fail("Error al actualizar", err)
		return models.Activity{}, storeErr("update activity", err, models.ErrActivityNotFound)
	}

	c.mu.Lock()
	c.replaceActivity(updated)
	c.editor = EditorState{}
	c.mu.Unlock()

	c.auditor.Record(ctx, utils.AuditActionUpdate, resource, id, previous, updated, nil)
	c.notify(updatedTitle, "", models.VariantDefault)
	return updated, nil
}

// DeleteActivity removes an activity or raffle
func (c *Coordinator) DeleteActivity(ctx context.Context, id string) error {
	c.mu.RLock()
	previous, _ := c.findActivity(id)
	c.mu.RUnlock()

	if err := c.store.Activities().Delete(ctx, id); err != nil {
		c.logger.Error("failed to delete activity", zap.String("id", id), zap.Error(err))
		c.fail("Error al eliminar", err)
		return storeErr("delete activity", err, models.ErrActivityNotFound)
	}

	c.mu.Lock()
	for i := range c.activities {
		if c.activities[i].ID == id {
			c.activities = append(c.activities[:i:i], c.activities[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	_, resource, _, _ := activityLabels(previous.Type)
	c.auditor.Record(ctx, utils.AuditActionDelete, resource, id, nil, nil, nil)
	c.notify("Actividad eliminada", "", models.VariantDefault)
	return nil
}

// DrawRaffleWinner picks a winner uniformly from the raffle's participants
// and completes the raffle in a single store update. Preconditions are
// checked before any write; a raffle already completed is never redrawn.
func (c *Coordinator) DrawRaffleWinner(ctx context.Context, id string) (models.Activity, error) {
	c.mu.RLock()
	current, ok := c.findActivity(id)
	participants := append([]string(nil), current.Participants...)
	c.mu.RUnlock()

	var precondition error
	switch {
	case !ok:
		precondition = models.ErrActivityNotFound
	case !current.IsRaffle():
		precondition = models.ErrNotARaffle
	case current.Status != models.StatusActive:
		precondition = models.ErrRaffleCompleted
	case len(participants) == 0:
		precondition = models.ErrNoParticipants
	}
	if precondition != nil {
		observability.RaffleDraws.WithLabelValues("rejected").Inc()
		if errors.Is(precondition, models.ErrNoParticipants) {
			c.notify("No hay participantes", "", models.VariantDestructive)
		} else {
			c.fail("Error al sortear", precondition)
		}
		return models.Activity{}, precondition
	}

	winnerID, err := c.selector.Pick(participants)
	if err != nil {
		observability.RaffleDraws.WithLabelValues("rejected").Inc()
		c.fail("Error al sortear", err)
		return models.Activity{}, err
	}

	completed, err := c.store.Activities().CompleteRaffle(ctx, id, winnerID)
	if err != nil {
		observability.RaffleDraws.WithLabelValues("failed").Inc()
		c.logger.Error("failed to complete raffle", zap.String("id", id), zap.Error(err))
		c.fail("Error al sortear", err)
		if errors.Is(err, store.ErrConflict) {
			c.refreshActivity(ctx, id)
			return models.Activity{}, fmt.Errorf("%w: %s", models.ErrRaffleCompleted, id)
		}
		return models.Activity{}, storeErr("complete raffle", err, models.ErrActivityNotFound)
	}

	c.mu.Lock()
	c.replaceActivity(completed)
	winner, found := c.findBeneficiary(winnerID)
	c.mu.Unlock()

	observability.RaffleDraws.WithLabelValues("success").Inc()
	c.auditor.Record(ctx, utils.AuditActionDraw, utils.AuditResourceRaffle, id, current, completed, map[string]string{
		"winner_id":    winnerID,
		"participants": fmt.Sprint(len(participants)),
	})

	name := "Desconocido"
	if found {
		name = winner.Name
	}
	c.notify("¡Tenemos un ganador!", name+" ha ganado.", models.VariantSuccess)
	return completed, nil
}
