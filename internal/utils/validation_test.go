package utils

import (
	"errors"
	"testing"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/stretchr/testify/assert"
)

func fields(result *ValidationResult) []string {
	out := []string{}
	for _, e := range result.Errors {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateBeneficiaryForm(t *testing.T) {
	tests := []struct {
		name   string
		form   models.BeneficiaryForm
		fields []string
	}{
		{
			name:   "valid",
			form:   models.BeneficiaryForm{Name: "María", Age: 72, NationalID: "V-1"},
			fields: []string{},
		},
		{
			name:   "all required missing",
			form:   models.BeneficiaryForm{Name: "  "},
			fields: []string{"name", "age", "national_id"},
		},
		{
			name:   "unknown status",
			form:   models.BeneficiaryForm{Name: "María", Age: 72, NationalID: "V-1", Status: "deceased"},
			fields: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateBeneficiaryForm(tt.form)
			assert.Equal(t, tt.fields, fields(result))
			assert.Equal(t, len(tt.fields) == 0, result.IsValid)
		})
	}
}

func TestValidateActivityForm(t *testing.T) {
	tests := []struct {
		name   string
		kind   models.ActivityType
		form   models.ActivityForm
		fields []string
	}{
		{
			name:   "cultural valid",
			kind:   models.ActivityCultural,
			form:   models.ActivityForm{Title: "Taller", Date: "2025-07-15", Time: "10:00", Location: "Casa"},
			fields: []string{},
		},
		{
			name:   "cultural missing time and location",
			kind:   models.ActivityCultural,
			form:   models.ActivityForm{Title: "Taller", Date: "2025-07-15"},
			fields: []string{"time", "location"},
		},
		{
			name:   "raffle valid without time",
			kind:   models.ActivityRaffle,
			form:   models.ActivityForm{Title: "Rifa", Prize: "Cesta", Date: "2025-07-30"},
			fields: []string{},
		},
		{
			name:   "raffle missing prize",
			kind:   models.ActivityRaffle,
			form:   models.ActivityForm{Title: "Rifa", Date: "2025-07-30"},
			fields: []string{"prize"},
		},
		{
			name:   "raffle with cultural status",
			kind:   models.ActivityRaffle,
			form:   models.ActivityForm{Title: "Rifa", Prize: "Cesta", Date: "2025-07-30", Status: models.StatusScheduled},
			fields: []string{"status"},
		},
		{
			name:   "unknown type",
			kind:   "bingo",
			form:   models.ActivityForm{},
			fields: []string{"type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fields, fields(ValidateActivityForm(tt.kind, tt.form)))
		})
	}
}

func TestValidationResult_Err(t *testing.T) {
	assert.NoError(t, NewValidationResult().Err())

	result := NewValidationResult()
	result.AddError("name", "name is required")
	result.AddError("age", "age is required")

	err := result.Err()
	assert.True(t, errors.Is(err, models.ErrMissingField))

	var fieldErr *models.FieldError
	assert.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "name", fieldErr.Field)
}
