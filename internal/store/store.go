// Package store is the remote store client: the durable tables behind the
// coordinator's in-memory collections.
package store

import (
	"context"
	"errors"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the given id
	ErrNotFound = errors.New("row not found")
	// ErrConflict is returned when a conditional write found the row in an unexpected state
	ErrConflict = errors.New("row changed concurrently")
)

// Table names shared by all backends
const (
	TableBeneficiaries = "beneficiaries"
	TableActivities    = "activities"
)

// BeneficiaryTable is the beneficiaries table
type BeneficiaryTable interface {
	SelectAll(ctx context.Context) ([]models.Beneficiary, error)
	// Insert stores a new row and returns it with the generated id and timestamps.
	Insert(ctx context.Context, b models.Beneficiary) (models.Beneficiary, error)
	// Update replaces the editable fields of the row with the given id.
	Update(ctx context.Context, id string, b models.Beneficiary) (models.Beneficiary, error)
	Delete(ctx context.Context, id string) error
	// SetNutritionFlag sets the nutrition flag on every row in ids. Unknown ids are ignored.
	SetNutritionFlag(ctx context.Context, ids []string, flag bool) error
}

// ActivityTable is the activities table holding both cultural activities and raffles
type ActivityTable interface {
	SelectAll(ctx context.Context) ([]models.Activity, error)
	Insert(ctx context.Context, a models.Activity) (models.Activity, error)
	Update(ctx context.Context, id string, a models.Activity) (models.Activity, error)
	Delete(ctx context.Context, id string) error
	// CompleteRaffle marks an active raffle completed with the given winner.
	// A raffle that is no longer active yields ErrConflict.
	CompleteRaffle(ctx context.Context, id, winnerID string) (models.Activity, error)
}

// Store groups the tables of one backend
type Store interface {
	Beneficiaries() BeneficiaryTable
	Activities() ActivityTable
	Close(ctx context.Context) error
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneBeneficiary(b models.Beneficiary) models.Beneficiary {
	b.Pathologies = cloneStrings(b.Pathologies)
	b.Medications = cloneStrings(b.Medications)
	b.Disabilities = cloneStrings(b.Disabilities)
	if b.Location != nil {
		loc := *b.Location
		b.Location = &loc
	}
	return b
}

func cloneActivity(a models.Activity) models.Activity {
	a.Participants = cloneStrings(a.Participants)
	if a.WinnerID != nil {
		winner := *a.WinnerID
		a.WinnerID = &winner
	}
	return a
}
