package repository

import (
	"errors"
	"strings"

	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// HierarchyFilter narrows team and designation listings
type HierarchyFilter struct {
	DepartmentID *uuid.UUID
	TeamID       *uuid.UUID
	Search       string
}

// EmployeeFilter narrows employee listings
type EmployeeFilter struct {
	Search        string
	RoleID        *uuid.UUID
	DepartmentID  *uuid.UUID
	TeamID        *uuid.UUID
	DesignationID *uuid.UUID
	IsActive      *bool
}

// KPIFilter narrows KPI listings. Only the latest version of each KPI is returned.
type KPIFilter struct {
	Search        string
	KRAID         *uuid.UUID
	Status        models.KPIStatus
	DepartmentID  *uuid.UUID
	TeamID        *uuid.UUID
	DesignationID *uuid.UUID
}

// GoalFilter narrows goal listings
type GoalFilter struct {
	AssignedToIDs []uuid.UUID
	ReviewCycleID *uuid.UUID
	Progress      models.GoalProgress
}

// OnboardingBundle is everything created for a new organisation. IDs are assigned by the caller
// so the rows can reference each other before insertion.
type OnboardingBundle struct {
	Organisation *models.Organisation
	Roles        []models.Role
	KRAs         []models.KRA
	Weightages   []models.KRAWeightage
	Admin        *models.Employee
	History      *models.EmployeeHistory
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}

func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
