package service

import (
	"fmt"

	"performance-backend/internal/database/models"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"

	"github.com/google/uuid"
)

// UserActivityService records and lists the audit trail
type UserActivityService struct {
	repo repository.UserActivityRepositoryInterface
}

// NewUserActivityService creates a new user activity service
func NewUserActivityService(repo repository.UserActivityRepositoryInterface) *UserActivityService {
	return &UserActivityService{repo: repo}
}

// UserActivityResponse represents one audit trail entry
type UserActivityResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Activity     string    `json:"activity"`
	Description  string    `json:"description"`
	CreatedAt    string    `json:"created_at"`
}

// Record writes an audit entry. Failures are logged and never reach the caller.
func (s *UserActivityService) Record(orgID, employeeID uuid.UUID, activity, description string) {
	entry := &models.UserActivity{
		OrganisationID: orgID,
		EmployeeID:     employeeID,
		Activity:       activity,
		Description:    description,
	}
	if err := s.repo.Create(entry); err != nil {
		logger.New().WithFields(map[string]interface{}{
			"organisation_id": orgID,
			"employee_id":     employeeID,
			"activity":        activity,
		}).WithError(err).Warn("Failed to record user activity")
	}
}

// List returns the organisation's audit trail, newest first
func (s *UserActivityService) List(actor Actor, page, pageSize int) (*PagedResponse[UserActivityResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	rows, total, err := s.repo.List(actor.OrganisationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list user activities: %w", err)
	}

	items := make([]UserActivityResponse, len(rows))
	for i, row := range rows {
		items[i] = UserActivityResponse{
			ID:          row.ID,
			EmployeeID:  row.EmployeeID,
			Activity:    row.Activity,
			Description: row.Description,
			CreatedAt:   formatTimestamp(row.CreatedAt),
		}
		if row.Employee != nil {
			items[i].EmployeeName = row.Employee.FullName()
		}
	}

	return &PagedResponse[UserActivityResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
