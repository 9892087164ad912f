package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultKRAs are created for every new organisation as weightage version 1
var defaultKRAs = []struct {
	Name        string
	Description string
	Weightage   int
}{
	{"Results", "Delivery against the goals and KPIs of the role", 60},
	{"Skill Development & Knowledge Sharing", "Learning new skills and helping others grow", 20},
	{"Attitude Fitment", "Alignment with the values and culture of the organisation", 20},
}

// OrganisationService handles onboarding and organisation settings
type OrganisationService struct {
	repo         repository.OrganisationRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	activity     ActivityRecorder
	validator    *validator.Validate
	now          func() time.Time
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(repo repository.OrganisationRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *OrganisationService {
	return &OrganisationService{
		repo:         repo,
		employeeRepo: employeeRepo,
		activity:     activity,
		validator:    validator,
		now:          time.Now,
	}
}

// WithClock replaces the time source
func (s *OrganisationService) WithClock(now func() time.Time) *OrganisationService {
	s.now = now
	return s
}

// OnboardAdminRequest describes the first administrator of a new organisation
type OnboardAdminRequest struct {
	EmployeeCode string        `json:"employee_code" validate:"required,max=20"`
	FirstName    string        `json:"first_name" validate:"required,max=50"`
	LastName     string        `json:"last_name" validate:"required,max=50"`
	Email        string        `json:"email" validate:"required,email,max=255"`
	ContactNo    string        `json:"contact_no" validate:"max=20"`
	Gender       models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
}

// OnboardOrganisationRequest represents the request to sign up a new organisation
type OnboardOrganisationRequest struct {
	Name      string              `json:"name" validate:"required,min=1,max=100"`
	Domain    string              `json:"domain" validate:"required,max=100"`
	ContactNo string              `json:"contact_no" validate:"max=20"`
	TimeZone  string              `json:"time_zone" validate:"required,max=64"`
	Admin     OnboardAdminRequest `json:"admin" validate:"required"`
}

// UpdateOrganisationRequest represents the request to update organisation settings
type UpdateOrganisationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ContactNo string `json:"contact_no" validate:"max=20"`
	TimeZone  string `json:"time_zone" validate:"required,max=64"`
}

// OrganisationResponse represents the response for organisation operations
type OrganisationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	ContactNo string    `json:"contact_no"`
	TimeZone  string    `json:"time_zone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// OnboardResponse is returned after a successful sign-up
type OnboardResponse struct {
	Organisation OrganisationResponse `json:"organisation"`
	AdminID      uuid.UUID            `json:"admin_id"`
}

// Onboard creates an organisation with its system roles, default KRAs and administrator
func (s *OrganisationService) Onboard(req *OnboardOrganisationRequest) (*OnboardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		return nil, apperrors.NewValidationError("time_zone", "unknown time zone")
	}

	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	if _, err := s.repo.GetByDomain(domain); err == nil {
		return nil, apperrors.ErrOrganisationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check organisation domain: %w", err)
	}

	exists, err := s.employeeRepo.EmailExists(req.Admin.Email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmployeeExists
	}

	now := s.now()
	today := DateIn(now, loc)
	bundle := buildOnboardingBundle(req, domain, today, now)

	if err := s.repo.Onboard(bundle); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrOrganisationExists
		}
		return nil, fmt.Errorf("failed to onboard organisation: %w", err)
	}

	s.activity.Record(bundle.Organisation.ID, bundle.Admin.ID, "Organisation Onboarded",
		fmt.Sprintf("%s onboarded", bundle.Organisation.Name))
	return &OnboardResponse{
		Organisation: *toOrganisationResponse(bundle.Organisation),
		AdminID:      bundle.Admin.ID,
	}, nil
}

// buildOnboardingBundle assigns IDs up front so the rows can reference each other
func buildOnboardingBundle(req *OnboardOrganisationRequest, domain string, today, now time.Time) *repository.OnboardingBundle {
	org := &models.Organisation{
		Name:      strings.TrimSpace(req.Name),
		Domain:    domain,
		ContactNo: req.ContactNo,
		TimeZone:  req.TimeZone,
		IsActive:  true,
	}
	org.ID = uuid.New()

	systemRoles := []string{models.RoleOrgAdmin, models.RoleManager, models.RoleEmployee}
	roles := make([]models.Role, len(systemRoles))
	for i, name := range systemRoles {
		roles[i] = models.Role{
			OrganisationID: org.ID,
			DisplayID:      formatDisplayID("R", int64(i+1)),
			Name:           name,
			IsActive:       true,
			IsSystem:       true,
			Permissions:    DefaultPermissions(name),
		}
		roles[i].ID = uuid.New()
	}

	kras := make([]models.KRA, len(defaultKRAs))
	weightages := make([]models.KRAWeightage, len(defaultKRAs))
	for i, d := range defaultKRAs {
		kras[i] = models.KRA{
			OrganisationID: org.ID,
			DisplayID:      fmt.Sprintf("KRA%02d", i+1),
			Name:           d.Name,
			Description:    d.Description,
			SortOrder:      i + 1,
		}
		kras[i].ID = uuid.New()
		weightages[i] = models.KRAWeightage{
			KRAID:          kras[i].ID,
			OrganisationID: org.ID,
			Weightage:      d.Weightage,
			Version:        1,
			ValidFrom:      today,
		}
	}

	admin := &models.Employee{
		OrganisationID: org.ID,
		EmployeeCode:   strings.TrimSpace(req.Admin.EmployeeCode),
		FirstName:      strings.TrimSpace(req.Admin.FirstName),
		LastName:       strings.TrimSpace(req.Admin.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Admin.Email)),
		ContactNo:      req.Admin.ContactNo,
		Gender:         req.Admin.Gender,
		DateOfJoining:  today,
		IsActive:       true,
		RoleID:         roles[0].ID,
	}
	admin.ID = uuid.New()

	return &repository.OnboardingBundle{
		Organisation: org,
		Roles:        roles,
		KRAs:         kras,
		Weightages:   weightages,
		Admin:        admin,
		History:      &models.EmployeeHistory{EmployeeID: admin.ID, ActivatedAt: now},
	}
}

// Get retrieves the actor's organisation
func (s *OrganisationService) Get(actor Actor) (*OrganisationResponse, error) {
	org, err := s.get(actor.OrganisationID)
	if err != nil {
		return nil, err
	}
	return toOrganisationResponse(org), nil
}

// Update updates the organisation's name, contact number and time zone
func (s *OrganisationService) Update(actor Actor, req *UpdateOrganisationRequest) (*OrganisationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if _, err := time.LoadLocation(req.TimeZone); err != nil {
		return nil, apperrors.NewValidationError("time_zone", "unknown time zone")
	}

	org, err := s.get(actor.OrganisationID)
	if err != nil {
		return nil, err
	}
	org.Name = strings.TrimSpace(req.Name)
	org.ContactNo = req.ContactNo
	org.TimeZone = req.TimeZone

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organisation: %w", err)
	}

	s.activity.Record(org.ID, actor.EmployeeID, "Organisation Updated", org.Name+" settings updated")
	return toOrganisationResponse(org), nil
}

func (s *OrganisationService) get(id uuid.UUID) (*models.Organisation, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}
	return org, nil
}

func toOrganisationResponse(o *models.Organisation) *OrganisationResponse {
	return &OrganisationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Domain:    o.Domain,
		ContactNo: o.ContactNo,
		TimeZone:  o.TimeZone,
		IsActive:  o.IsActive,
		CreatedAt: formatTimestamp(o.CreatedAt),
		UpdatedAt: formatTimestamp(o.UpdatedAt),
	}
}
