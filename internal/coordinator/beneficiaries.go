package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func storeErr(op string, err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", notFound, op)
	}
	return models.StoreError(op, err)
}

func (c *Coordinator) findBeneficiary(id string) (models.Beneficiary, bool) {
	for _, b := range c.beneficiaries {
		if b.ID == id {
			return b, true
		}
	}
	return models.Beneficiary{}, false
}

// CreateOrUpdateBeneficiary writes the form through to the store. A non-empty
// id updates that beneficiary, otherwise a new one is inserted. Local state
// changes only from the returned row; on failure it stays as it was and the
// editor remains open.
func (c *Coordinator) CreateOrUpdateBeneficiary(ctx context.Context, id string, form models.BeneficiaryForm) (models.Beneficiary, error) {
	c.OpenEditor(EditorBeneficiary, id)

	if err := utils.ValidateBeneficiaryForm(form).Err(); err != nil {
		c.fail("Datos incompletos", err)
		return models.Beneficiary{}, err
	}

	row := form.Beneficiary()
	row.Phone = utils.NormalizePhone(row.Phone, c.region)

	if id == "" {
		return c.insertBeneficiary(ctx, row)
	}
	return c.updateBeneficiary(ctx, id, row)
}

func (c *Coordinator) insertBeneficiary(ctx context.Context, row models.Beneficiary) (models.Beneficiary, error) {
	created, err := c.store.Beneficiaries().Insert(ctx, row)
	if err != nil {
		c.logger.Error("failed to create beneficiary", zap.Error(err))
		c.fail("Error al crear", err)
		return models.Beneficiary{}, models.StoreError("insert beneficiary", err)
	}

	c.mu.Lock()
	c.beneficiaries = append(c.beneficiaries, created)
	c.editor = EditorState{}
	c.mu.Unlock()

	c.auditor.Record(ctx, utils.AuditActionCreate, utils.AuditResourceBeneficiary, created.ID, nil, created, nil)
	c.notify("Perfil creado", "Nuevo adulto mayor registrado.", models.VariantDefault)
	return created, nil
}

func (c *Coordinator) updateBeneficiary(ctx context.Context, id string, row models.Beneficiary) (models.Beneficiary, error) {
	c.mu.RLock()
	previous, ok := c.findBeneficiary(id)
	c.mu.RUnlock()
	if !ok {
		c.fail("Error al actualizar", models.ErrBeneficiaryNotFound)
		return models.Beneficiary{}, models.ErrBeneficiaryNotFound
	}

	updated, err := c.store.Beneficiaries().Update(ctx, id, row)
	if err != nil {
		c.logger.Error("failed to update beneficiary", zap.String("id", id), zap.Error(err))
		c.fail("Error al actualizar", err)
		return models.Beneficiary{}, storeErr("update beneficiary", err, models.ErrBeneficiaryNotFound)
	}

	c.mu.Lock()
	for i := range c.beneficiaries {
		if c.beneficiaries[i].ID == id {
			c.beneficiaries[i] = updated
			break
		}
	}
	c.editor = EditorState{}
	c.mu.Unlock()

	c.auditor.Record(ctx, utils.AuditActionUpdate, utils.AuditResourceBeneficiary, id, previous, updated, nil)
	c.notify("Perfil actualizado", "Los datos han sido actualizados.", models.VariantDefault)
	return updated, nil
}

// DeleteBeneficiary removes a beneficiary. Activities keep any reference to
// the deleted id.
func (c *Coordinator) DeleteBeneficiary(ctx context.Context, id string) error {
	if err := c.store.Beneficiaries().Delete(ctx, id); err != nil {
		c.logger.Error("failed to delete beneficiary", zap.String("id", id), zap.Error(err))
		c.fail("Error al eliminar", err)
		return storeErr("delete beneficiary", err, models.ErrBeneficiaryNotFound)
	}

	c.mu.Lock()
	for i := range c.beneficiaries {
		if c.beneficiaries[i].ID == id {
			c.beneficiaries = append(c.beneficiaries[:i:i], c.beneficiaries[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.auditor.Record(ctx, utils.AuditActionDelete, utils.AuditResourceBeneficiary, id, nil, nil, nil)
	c.notify("Perfil eliminado", "El perfil ha sido eliminado.", models.VariantDefault)
	return nil
}

// SetNutritionBeneficiaries makes exactly the given ids nutrition-program
// members. The enable and disable batches run concurrently and are not
// rolled back when only one of them fails.
func (c *Coordinator) SetNutritionBeneficiaries(ctx context.Context, ids []string) error {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var toEnable, toDisable []string
	c.mu.RLock()
	for _, b := range c.beneficiaries {
		switch {
		case selected[b.ID] && !b.NutritionBeneficiary:
			toEnable = append(toEnable, b.ID)
		case !selected[b.ID] && b.NutritionBeneficiary:
			toDisable = append(toDisable, b.ID)
		}
	}
	c.mu.RUnlock()

	var (
		enableErr  error
		disableErr error
		g          errgroup.Group
	)
	if len(toEnable) > 0 {
		g.Go(func() error {
			enableErr = c.store.Beneficiaries().SetNutritionFlag(ctx, toEnable, true)
			return nil
		})
	}
	if len(toDisable) > 0 {
		g.Go(func() error {
			disableErr = c.store.Beneficiaries().SetNutritionFlag(ctx, toDisable, false)
			return nil
		})
	}
	_ = g.Wait()

	if enableErr != nil || disableErr != nil {
		var errs []error
		if enableErr != nil {
			errs = append(errs, models.StoreError("enable nutrition", enableErr))
		}
		if disableErr != nil {
			errs = append(errs, models.StoreError("disable nutrition", disableErr))
		}
		err := errors.Join(errs...)
		c.logger.Error("nutrition update failed",
			zap.Int("to_enable", len(toEnable)),
			zap.Int("to_disable", len(toDisable)),
			zap.Bool("enable_failed", enableErr != nil),
			zap.Bool("disable_failed", disableErr != nil),
			zap.Error(err))
		c.fail("Error al guardar", err)
		return err
	}

	c.mu.Lock()
	for i := range c.beneficiaries {
		c.beneficiaries[i].NutritionBeneficiary = selected[c.beneficiaries[i].ID]
	}
	c.mu.Unlock()

	c.auditor.Record(ctx, utils.AuditActionUpdate, utils.AuditResourceNutrition, "", nil, ids, map[string]string{
		"enabled":  fmt.Sprint(len(toEnable)),
		"disabled": fmt.Sprint(len(toDisable)),
	})
	c.notify("Beneficiarios actualizados", "", models.VariantSuccess)
	return nil
}
