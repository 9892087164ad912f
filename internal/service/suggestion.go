package service

import (
	"errors"
	"fmt"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const anonymousAuthor = "Anonymous"

// SuggestionService handles the suggestion box
type SuggestionService struct {
	repo      repository.SuggestionRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(repo repository.SuggestionRepositoryInterface, roleRepo repository.RoleRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *SuggestionService {
	return &SuggestionService{
		repo:      repo,
		roleRepo:  roleRepo,
		activity:  activity,
		validator: validator,
	}
}

// SuggestionRequest represents the request to create or edit a suggestion
type SuggestionRequest struct {
	Suggestion  string `json:"suggestion" validate:"required,min=1,max=1000"`
	IsAnonymous bool   `json:"is_anonymous"`
	IsDraft     bool   `json:"is_draft"`
}

// SuggestionProgressRequest moves a received suggestion along with a comment
type SuggestionProgressRequest struct {
	Progress models.SuggestionProgress `json:"progress" validate:"required,oneof=pending in_progress completed deferred"`
	Comment  string                    `json:"comment" validate:"required,min=1,max=1000"`
}

// SuggestionResponse represents the response for suggestion operations
type SuggestionResponse struct {
	ID            uuid.UUID                 `json:"id"`
	DisplayID     string                    `json:"display_id"`
	Suggestion    string                    `json:"suggestion"`
	IsAnonymous   bool                      `json:"is_anonymous"`
	IsDraft       bool                      `json:"is_draft"`
	Progress      models.SuggestionProgress `json:"progress"`
	SuggestedByID *uuid.UUID                `json:"suggested_by_id,omitempty"`
	SuggestedBy   string                    `json:"suggested_by"`
	CreatedAt     string                    `json:"created_at"`
	UpdatedAt     string                    `json:"updated_at"`
}

// SuggestionCommentResponse is one progress note
type SuggestionCommentResponse struct {
	ID            uuid.UUID                 `json:"id"`
	Comment       string                    `json:"comment"`
	Progress      models.SuggestionProgress `json:"progress"`
	CommentedByID uuid.UUID                 `json:"commented_by_id"`
	CommentedBy   string                    `json:"commented_by"`
	CreatedAt     string                    `json:"created_at"`
}

// Create creates a suggestion, either as a draft or submitted
func (s *SuggestionService) Create(actor Actor, req *SuggestionRequest) (*SuggestionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	text, err := trimmedText("suggestion", req.Suggestion)
	if err != nil {
		return nil, err
	}
	req.Suggestion = text

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count suggestions: %w", err)
	}

	suggestion := &models.Suggestion{
		OrganisationID: actor.OrganisationID,
		DisplayID:      formatDisplayID("S", count+1),
		SuggestedByID:  actor.EmployeeID,
		Suggestion:     req.Suggestion,
		IsAnonymous:    req.IsAnonymous,
		IsDraft:        req.IsDraft,
		Progress:       models.SuggestionProgressPending,
	}
	if err := s.repo.Create(suggestion); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	if !suggestion.IsDraft {
		s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Suggestion Submitted", suggestion.DisplayID+" submitted")
	}
	return toSuggestionResponse(suggestion, true), nil
}

// Update edits a draft suggestion. Only the author may edit it.
func (s *SuggestionService) Update(actor Actor, id uuid.UUID, req *SuggestionRequest) (*SuggestionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	text, err := trimmedText("suggestion", req.Suggestion)
	if err != nil {
		return nil, err
	}
	req.Suggestion = text

	suggestion, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if suggestion.SuggestedByID != actor.EmployeeID {
		return nil, apperrors.ErrNotSuggestionOwner
	}
	if !suggestion.IsDraft {
		return nil, apperrors.ErrSuggestionNotDraft
	}

	suggestion.Suggestion = req.Suggestion
	suggestion.IsAnonymous = req.IsAnonymous
	suggestion.IsDraft = req.IsDraft
	if err := s.repo.Update(suggestion); err != nil {
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}

	if !suggestion.IsDraft {
		s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Suggestion Submitted", suggestion.DisplayID+" submitted")
	}
	return toSuggestionResponse(suggestion, true), nil
}

// ListMine returns the actor's own suggestions, drafts included
func (s *SuggestionService) ListMine(actor Actor, page, pageSize int) (*PagedResponse[SuggestionResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	suggestions, total, err := s.repo.ListBySuggester(actor.OrganisationID, actor.EmployeeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	items := make([]SuggestionResponse, len(suggestions))
	for i := range suggestions {
		items[i] = *toSuggestionResponse(&suggestions[i], true)
	}
	return &PagedResponse[SuggestionResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListReceived returns submitted suggestions. Authors of anonymous suggestions are hidden.
func (s *SuggestionService) ListReceived(actor Actor, progress models.SuggestionProgress, page, pageSize int) (*PagedResponse[SuggestionResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)
	if progress != "" && !progress.IsValid() {
		return nil, apperrors.NewValidationError("progress", "must be one of pending in_progress completed deferred")
	}

	suggestions, total, err := s.repo.ListReceived(actor.OrganisationID, progress, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list received suggestions: %w", err)
	}

	items := make([]SuggestionResponse, len(suggestions))
	for i := range suggestions {
		items[i] = *toSuggestionResponse(&suggestions[i], false)
	}
	return &PagedResponse[SuggestionResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateProgress records a progress change with a comment. Completed is terminal.
func (s *SuggestionService) UpdateProgress(actor Actor, id uuid.UUID, req *SuggestionProgressRequest) (*SuggestionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	comment, err := trimmedText("comment", req.Comment)
	if err != nil {
		return nil, err
	}
	req.Comment = comment

	suggestion, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if suggestion.IsDraft {
		return nil, apperrors.ErrSuggestionIsDraft
	}
	if suggestion.Progress == models.SuggestionProgressCompleted {
		return nil, apperrors.ErrSuggestionCompleted
	}

	suggestion.Progress = req.Progress
	entry := &models.SuggestionComment{
		CommentedByID: actor.EmployeeID,
		Comment:       req.Comment,
		Progress:      req.Progress,
	}
	if err := s.repo.AddProgress(suggestion, entry); err != nil {
		return nil, fmt.Errorf("failed to update suggestion progress: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Suggestion Progress Updated",
		fmt.Sprintf("%s moved to %s", suggestion.DisplayID, suggestion.Progress))
	return toSuggestionResponse(suggestion, false), nil
}

// ListComments returns the progress notes of a suggestion to its author or to reviewers of received suggestions
func (s *SuggestionService) ListComments(actor Actor, id uuid.UUID) ([]SuggestionCommentResponse, error) {
	suggestion, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if suggestion.SuggestedByID != actor.EmployeeID {
		allowed, err := hasModulePermission(s.roleRepo, actor.EmployeeID, models.ModuleReceivedSuggestions, false)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperrors.ErrPermissionDenied
		}
	}

	comments, err := s.repo.ListComments(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestion comments: %w", err)
	}
	out := make([]SuggestionCommentResponse, len(comments))
	for i, c := range comments {
		out[i] = SuggestionCommentResponse{
			ID:            c.ID,
			Comment:       c.Comment,
			Progress:      c.Progress,
			CommentedByID: c.CommentedByID,
			CreatedAt:     formatTimestamp(c.CreatedAt),
		}
		if c.CommentedBy != nil {
			out[i].CommentedBy = c.CommentedBy.FullName()
		}
	}
	return out, nil
}

func (s *SuggestionService) get(orgID, id uuid.UUID) (*models.Suggestion, error) {
	suggestion, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	return suggestion, nil
}

// toSuggestionResponse hides the author of anonymous suggestions unless own is set
func toSuggestionResponse(sg *models.Suggestion, own bool) *SuggestionResponse {
	resp := &SuggestionResponse{
		ID:          sg.ID,
		DisplayID:   sg.DisplayID,
		Suggestion:  sg.Suggestion,
		IsAnonymous: sg.IsAnonymous,
		IsDraft:     sg.IsDraft,
		Progress:    sg.Progress,
		CreatedAt:   formatTimestamp(sg.CreatedAt),
		UpdatedAt:   formatTimestamp(sg.UpdatedAt),
	}
	if sg.IsAnonymous && !own {
		resp.SuggestedBy = anonymousAuthor
		return resp
	}
	id := sg.SuggestedByID
	resp.SuggestedByID = &id
	if sg.SuggestedBy != nil {
		resp.SuggestedBy = sg.SuggestedBy.FullName()
	}
	return resp
}
