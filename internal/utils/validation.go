package utils

import (
	"strings"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Err returns a *models.FieldError for the first failing field, or nil
func (vr *ValidationResult) Err() error {
	if vr.IsValid || len(vr.Errors) == 0 {
		return nil
	}
	return &models.FieldError{Field: vr.Errors[0].Field}
}

func required(result *ValidationResult, field, value string) {
	if strings.TrimSpace(value) == "" {
		result.AddError(field, field+" is required")
	}
}

// ValidateBeneficiaryForm checks the required beneficiary fields: name, age and national id
func ValidateBeneficiaryForm(form models.BeneficiaryForm) *ValidationResult {
	result := NewValidationResult()

	required(result, "name", form.Name)
	if form.Age <= 0 {
		result.AddError("age", "age is required")
	}
	required(result, "national_id", form.NationalID)

	if form.Status != "" && !form.Status.Valid() {
		result.AddError("status", "status must be active or inactive")
	}

	return result
}

// ValidateActivityForm checks the required fields of the given activity variant
func ValidateActivityForm(kind models.ActivityType, form models.ActivityForm) *ValidationResult {
	result := NewValidationResult()

	switch kind {
	case models.ActivityCultural:
		required(result, "title", form.Title)
		required(result, "date", form.Date)
		required(result, "time", form.Time)
		required(result, "location", form.Location)
	case models.ActivityRaffle:
		required(result, "title", form.Title)
		required(result, "prize", form.Prize)
		required(result, "date", form.Date)
	default:
		result.AddError("type", "type must be cultural or raffle")
		return result
	}

	if form.Status != "" && !kind.AllowsStatus(form.Status) {
		result.AddError("status", "status not allowed for "+string(kind))
	}

	return result
}
