package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "department"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get review cycle: %w", ErrReviewCycleNotFound)
		assert.True(t, errors.Is(wrapped, ErrReviewCycleNotFound))
		assert.False(t, errors.Is(wrapped, ErrReviewNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrTeamHasEmployees))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "in the department"}
		assert.Equal(t, "team already exists in the department", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(NewAlreadyExistsError("department", "x"), ErrDepartmentExists))
		assert.False(t, errors.Is(ErrDepartmentExists, ErrTeamExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrKRAExists))
		assert.False(t, IsAlreadyExists(ErrKRANotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestErrorCategories(t *testing.T) {
	t.Run("business rules", func(t *testing.T) {
		assert.True(t, IsBusinessRule(ErrInvalidWeightageTotal))
		assert.True(t, IsBusinessRule(fmt.Errorf("wrap: %w", ErrReviewTimelineClosed)))
		assert.False(t, IsBusinessRule(ErrNotReporteeManager))
	})

	t.Run("authorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotReporteeManager))
		assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
		assert.False(t, IsAuthorization(ErrMissingActor))
	})

	t.Run("authentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidSignature))
		assert.False(t, IsAuthentication(ErrSlackNotConfigured))
	})

	t.Run("configuration", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrLDAPNotConfigured))
		assert.Equal(t, "broken", NewConfigurationError("broken").Error())
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewBusinessRuleError", func(t *testing.T) {
		err := NewBusinessRuleError("rule broken")
		assert.Equal(t, "rule broken", err.Error())
		assert.True(t, IsBusinessRule(err))
	})
}
