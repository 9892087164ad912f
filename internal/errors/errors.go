package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in the department"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// BusinessRuleError represents a request that is well formed but violates a domain rule
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganisationNotFound     = &NotFoundError{Entity: "organisation"}
	ErrDepartmentNotFound       = &NotFoundError{Entity: "department"}
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrDesignationNotFound      = &NotFoundError{Entity: "designation"}
	ErrRoleNotFound             = &NotFoundError{Entity: "role"}
	ErrEmployeeNotFound         = &NotFoundError{Entity: "employee"}
	ErrManagerNotFound          = &NotFoundError{Entity: "manager"}
	ErrReviewCycleNotFound      = &NotFoundError{Entity: "review cycle"}
	ErrActiveReviewCycleMissing = &NotFoundError{Entity: "active review cycle"}
	ErrReviewNotFound           = &NotFoundError{Entity: "review"}
	ErrGoalNotFound             = &NotFoundError{Entity: "goal"}
	ErrKRANotFound              = &NotFoundError{Entity: "KRA"}
	ErrKPINotFound              = &NotFoundError{Entity: "KPI"}
	ErrSuggestionNotFound       = &NotFoundError{Entity: "suggestion"}
	ErrSlackIntegrationNotFound = &NotFoundError{Entity: "slack integration"}
)

// Already Exists Errors
var (
	ErrOrganisationExists = &AlreadyExistsError{Entity: "organisation", Context: "with this domain"}
	ErrDepartmentExists   = &AlreadyExistsError{Entity: "department", Context: "with this name in the organisation"}
	ErrTeamExists         = &AlreadyExistsError{Entity: "team", Context: "with this name in the department"}
	ErrDesignationExists  = &AlreadyExistsError{Entity: "designation", Context: "with this name in the team"}
	ErrRoleExists         = &AlreadyExistsError{Entity: "role", Context: "with this name in the organisation"}
	ErrEmployeeExists     = &AlreadyExistsError{Entity: "employee", Context: "with this email or employee code"}
	ErrKRAExists          = &AlreadyExistsError{Entity: "KRA", Context: "with this name in the organisation"}
)

// Business Logic Errors
var (
	ErrDepartmentHasEmployees   = &BusinessRuleError{Message: "department cannot be unpublished while active employees are linked to it"}
	ErrTeamHasEmployees         = &BusinessRuleError{Message: "team cannot be unpublished while active employees are linked to it"}
	ErrDesignationHasEmployees  = &BusinessRuleError{Message: "designation cannot be unpublished while active employees are linked to it"}
	ErrRoleHasEmployees         = &BusinessRuleError{Message: "role cannot be unpublished while active employees are assigned to it"}
	ErrParentDepartmentInactive = &BusinessRuleError{Message: "team cannot be published under an unpublished department"}
	ErrParentTeamInactive       = &BusinessRuleError{Message: "designation cannot be published under an unpublished team"}
	ErrSystemRoleImmutable      = &BusinessRuleError{Message: "system roles cannot be modified"}
	ErrEmployeeIsManager        = &BusinessRuleError{Message: "employee is the manager of active employees and cannot be deactivated"}
	ErrSelfDeactivation         = &BusinessRuleError{Message: "you cannot deactivate your own account"}
	ErrSelfManager              = &BusinessRuleError{Message: "an employee cannot be their own manager"}
	ErrSameManagers             = &BusinessRuleError{Message: "first and second manager must be different"}
	ErrInactiveReference        = &BusinessRuleError{Message: "referenced role, department, team or designation is unpublished"}
	ErrActiveReviewCycleExists  = &BusinessRuleError{Message: "another published review cycle is still active"}
	ErrReviewCycleOverlap       = &BusinessRuleError{Message: "review cycle overlaps with an existing review cycle"}
	ErrReviewCycleStarted       = &BusinessRuleError{Message: "start date of a started review cycle cannot be changed"}
	ErrReviewCycleInProgress    = &BusinessRuleError{Message: "KRA weightage cannot be changed while a review cycle is in progress"}
	ErrReviewCycleNotPublished  = &BusinessRuleError{Message: "review cycle is not published"}
	ErrReviewTimelineClosed     = &BusinessRuleError{Message: "review timeline is not active"}
	ErrReviewAlreadySubmitted   = &BusinessRuleError{Message: "review has already been submitted"}
	ErrKPINotApplicable         = &BusinessRuleError{Message: "KPI is not applicable to the reviewed employee"}
	ErrInvalidWeightageTotal    = &BusinessRuleError{Message: "KRA weightages must sum to 100"}
	ErrSuggestionNotDraft       = &BusinessRuleError{Message: "only draft suggestions can be edited"}
	ErrSuggestionIsDraft        = &BusinessRuleError{Message: "progress cannot be updated on a draft suggestion"}
	ErrSuggestionCompleted      = &BusinessRuleError{Message: "completed suggestions cannot change progress"}
)

// Authorization Errors
var (
	ErrNotReporteeManager = &AuthorizationError{Message: "only a manager of the employee can perform this action"}
	ErrNotGoalParticipant = &AuthorizationError{Message: "only the assignee or creator of the goal can update it"}
	ErrNotSuggestionOwner = &AuthorizationError{Message: "only the author can edit this suggestion"}
	ErrReviewAccessDenied = &AuthorizationError{Message: "you are not allowed to view this review"}
	ErrPermissionDenied   = &AuthorizationError{Message: "you do not have permission to access this module"}
)

// Authentication Errors
var (
	ErrMissingActor      = &AuthenticationError{Message: "authenticated employee not found in context"}
	ErrInvalidSlackState = &AuthenticationError{Message: "invalid or expired slack install state"}
	ErrInvalidSignature  = &AuthenticationError{Message: "request signature verification failed"}
)

// Configuration Errors
var (
	ErrSlackNotConfigured = &ConfigurationError{Message: "slack integration is not configured: SLACK_CLIENT_ID or SLACK_CLIENT_SECRET"}
	ErrLDAPNotConfigured  = &ConfigurationError{Message: "ldap directory is not configured: LDAP_HOST"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBusinessRule checks if an error is a BusinessRuleError
func IsBusinessRule(err error) bool {
	var ruleErr *BusinessRuleError
	return errors.As(err, &ruleErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBusinessRuleError creates a new BusinessRuleError
func NewBusinessRuleError(message string) error {
	return &BusinessRuleError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
