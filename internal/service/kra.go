package service

import (
	"errors"
	"fmt"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KRAService manages key result areas and their versioned weightages
type KRAService struct {
	repo      repository.KRARepositoryInterface
	cycleRepo repository.ReviewCycleRepositoryInterface
	orgRepo   repository.OrganisationRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
	now       func() time.Time
}

// NewKRAService creates a new KRA service
func NewKRAService(repo repository.KRARepositoryInterface, cycleRepo repository.ReviewCycleRepositoryInterface, orgRepo repository.OrganisationRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *KRAService {
	return &KRAService{
		repo:      repo,
		cycleRepo: cycleRepo,
		orgRepo:   orgRepo,
		activity:  activity,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the time source
func (s *KRAService) WithClock(now func() time.Time) *KRAService {
	s.now = now
	return s
}

// CreateKRARequest represents the request to create a KRA
type CreateKRARequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateWeightagesRequest replaces the weightage of every KRA
type UpdateWeightagesRequest struct {
	Weightages []WeightageInput `json:"weightages" validate:"required,min=1,dive"`
}

// KRAResponse is a KRA with its current weightage
type KRAResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayID   string    `json:"display_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	Weightage   int       `json:"weightage"`
	Version     int       `json:"version"`
}

// List returns every KRA with its current weightage
func (s *KRAService) List(actor Actor) ([]KRAResponse, error) {
	kras, err := s.repo.List(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list KRAs: %w", err)
	}
	current, err := s.repo.CurrentWeightages(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weightages: %w", err)
	}

	byKRA := make(map[uuid.UUID]models.KRAWeightage, len(current))
	for _, w := range current {
		byKRA[w.KRAID] = w
	}

	out := make([]KRAResponse, len(kras))
	for i, k := range kras {
		w := byKRA[k.ID]
		out[i] = KRAResponse{
			ID:          k.ID,
			DisplayID:   k.DisplayID,
			Name:        k.Name,
			Description: k.Description,
			SortOrder:   k.SortOrder,
			Weightage:   w.Weightage,
			Version:     w.Version,
		}
	}
	return out, nil
}

// Create adds a KRA to the current weightage version with weightage 0
func (s *KRAService) Create(actor Actor, req *CreateKRARequest) (*KRAResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	name, err := trimmedText("name", req.Name)
	if err != nil {
		return nil, err
	}
	req.Name = name

	exists, err := s.repo.NameExists(actor.OrganisationID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check KRA name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrKRAExists
	}

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count KRAs: %w", err)
	}
	current, err := s.repo.CurrentWeightages(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weightages: %w", err)
	}
	today, err := organisationToday(s.orgRepo, actor.OrganisationID, s.now())
	if err != nil {
		return nil, err
	}

	kra := &models.KRA{
		OrganisationID: actor.OrganisationID,
		DisplayID:      fmt.Sprintf("KRA%02d", count+1),
		Name:           req.Name,
		Description:    req.Description,
		SortOrder:      int(count) + 1,
	}
	weightage := &models.KRAWeightage{
		OrganisationID: actor.OrganisationID,
		Weightage:      0,
		Version:        currentVersion(current),
		ValidFrom:      today,
	}
	if err := s.repo.Create(kra, weightage); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrKRAExists
		}
		return nil, fmt.Errorf("failed to create KRA: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "KRA Created",
		fmt.Sprintf("%s %s created", kra.DisplayID, kra.Name))
	return &KRAResponse{
		ID:          kra.ID,
		DisplayID:   kra.DisplayID,
		Name:        kra.Name,
		Description: kra.Description,
		SortOrder:   kra.SortOrder,
		Weightage:   weightage.Weightage,
		Version:     weightage.Version,
	}, nil
}

// UpdateWeightages closes the current weightage version today and starts the next one
func (s *KRAService) UpdateWeightages(actor Actor, req *UpdateWeightagesRequest) ([]KRAResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	today, err := organisationToday(s.orgRepo, actor.OrganisationID, s.now())
	if err != nil {
		return nil, err
	}
	if _, err := s.cycleRepo.GetPublishedCovering(actor.OrganisationID, today); err == nil {
		return nil, apperrors.ErrReviewCycleInProgress
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check review cycle in progress: %w", err)
	}

	kras, err := s.repo.List(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list KRAs: %w", err)
	}
	ids := make([]uuid.UUID, len(kras))
	for i, k := range kras {
		ids[i] = k.ID
	}
	if err := ValidateWeightages(ids, req.Weightages); err != nil {
		return nil, err
	}

	current, err := s.repo.CurrentWeightages(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weightages: %w", err)
	}
	version := currentVersion(current) + 1

	next := make([]models.KRAWeightage, len(req.Weightages))
	for i, in := range req.Weightages {
		next[i] = models.KRAWeightage{
			KRAID:          in.KRAID,
			OrganisationID: actor.OrganisationID,
			Weightage:      in.Weightage,
			Version:        version,
			ValidFrom:      today,
		}
	}
	if err := s.repo.ReplaceWeightages(actor.OrganisationID, today, next); err != nil {
		return nil, fmt.Errorf("failed to update weightages: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "KRA Weightage Updated",
		fmt.Sprintf("KRA weightages updated to version %d", version))
	return s.List(actor)
}

// WeightagesAt returns the weightage of every KRA valid on day
func (s *KRAService) WeightagesAt(orgID uuid.UUID, day time.Time) (map[uuid.UUID]int, error) {
	return weightagesAt(s.repo, orgID, day)
}

func weightagesAt(repo repository.KRARepositoryInterface, orgID uuid.UUID, day time.Time) (map[uuid.UUID]int, error) {
	rows, err := repo.WeightagesAt(orgID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get weightages: %w", err)
	}
	out := make(map[uuid.UUID]int, len(rows))
	for _, w := range rows {
		out[w.KRAID] = w.Weightage
	}
	return out, nil
}

func currentVersion(current []models.KRAWeightage) int {
	version := 0
	for _, w := range current {
		if w.Version > version {
			version = w.Version
		}
	}
	if version == 0 {
		return 1
	}
	return version
}
