package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"
	"performance-backend/internal/slack"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlashCommand is the command registered for the Slack app
const SlashCommand = "/skillwatch"

const slackHelpText = "Usage: `" + SlashCommand + " goals` lists your open goals."

// SlackService manages the workspace installation of an organisation and delivers notifications
type SlackService struct {
	api          SlackAPI
	states       StateSigner
	repo         repository.SlackIntegrationRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	goals        OpenGoalLister
	activity     ActivityRecorder
}

// NewSlackService creates a new Slack service. api is nil when the Slack app is not configured.
func NewSlackService(api SlackAPI, states StateSigner, repo repository.SlackIntegrationRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, activity ActivityRecorder) *SlackService {
	return &SlackService{
		api:          api,
		states:       states,
		repo:         repo,
		employeeRepo: employeeRepo,
		activity:     activity,
	}
}

// WithGoals sets the goal source for the slash command. The goal service notifies through
// this service, so it is wired after both exist.
func (s *SlackService) WithGoals(goals OpenGoalLister) *SlackService {
	s.goals = goals
	return s
}

// SlackStatusResponse describes the installation of an organisation
type SlackStatusResponse struct {
	Connected     bool   `json:"connected"`
	WorkspaceID   string `json:"workspace_id,omitempty"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	ChannelName   string `json:"channel_name,omitempty"`
}

// SlackInstallResponse carries the URL that starts the OAuth flow
type SlackInstallResponse struct {
	URL string `json:"url"`
}

// SlackEventResponse is returned to Slack for an Events API callback
type SlackEventResponse struct {
	Challenge string `json:"challenge,omitempty"`
}

// InstallURL builds the Slack authorisation URL for the actor's organisation
func (s *SlackService) InstallURL(actor Actor) (*SlackInstallResponse, error) {
	if s.api == nil {
		return nil, apperrors.ErrSlackNotConfigured
	}
	state, err := s.states.GenerateState(actor.OrganisationID, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign install state: %w", err)
	}
	return &SlackInstallResponse{URL: s.api.AuthCodeURL(state)}, nil
}

// CompleteInstall exchanges the OAuth code and stores the installation for the organisation in state
func (s *SlackService) CompleteInstall(ctx context.Context, code, state string) (*SlackStatusResponse, error) {
	if s.api == nil {
		return nil, apperrors.ErrSlackNotConfigured
	}
	if code == "" {
		return nil, apperrors.NewValidationError("code", "is required")
	}
	claims, err := s.states.ValidateState(state)
	if err != nil {
		return nil, apperrors.ErrInvalidSlackState
	}

	install, err := s.api.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to complete slack install: %w", err)
	}

	integration := &models.SlackIntegration{OrganisationID: claims.OrganisationID}
	if existing, err := s.repo.GetByOrganisationID(claims.OrganisationID); err == nil {
		integration = existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get slack integration: %w", err)
	}
	integration.WorkspaceID = install.WorkspaceID
	integration.WorkspaceName = install.WorkspaceName
	integration.AccessToken = install.AccessToken
	integration.BotUserID = install.BotUserID
	integration.ChannelID = install.ChannelID
	integration.ChannelName = install.ChannelName

	if err := s.repo.Upsert(integration); err != nil {
		return nil, fmt.Errorf("failed to save slack integration: %w", err)
	}

	s.activity.Record(claims.OrganisationID, claims.EmployeeID, "Slack Connected",
		fmt.Sprintf("Slack workspace %s connected", install.WorkspaceName))
	return toSlackStatus(integration), nil
}

// Disconnect removes the organisation's installation
func (s *SlackService) Disconnect(actor Actor) error {
	if _, err := s.repo.GetByOrganisationID(actor.OrganisationID); err != nil {
		return notFoundOr(err, apperrors.ErrSlackIntegrationNotFound, "failed to get slack integration")
	}
	if err := s.repo.DeleteByOrganisationID(actor.OrganisationID); err != nil {
		return fmt.Errorf("failed to delete slack integration: %w", err)
	}
	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Slack Disconnected", "Slack workspace disconnected")
	return nil
}

// Status reports whether the organisation has a workspace connected
func (s *SlackService) Status(actor Actor) (*SlackStatusResponse, error) {
	integration, err := s.repo.GetByOrganisationID(actor.OrganisationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &SlackStatusResponse{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slack integration: %w", err)
	}
	return toSlackStatus(integration), nil
}

// HandleEvent verifies and processes an Events API callback
func (s *SlackService) HandleEvent(ctx context.Context, header http.Header, body []byte) (*SlackEventResponse, error) {
	if s.api == nil {
		return nil, apperrors.ErrSlackNotConfigured
	}
	if err := s.api.Verify(header, body); err != nil {
		return nil, apperrors.ErrInvalidSignature
	}
	event, err := s.api.ParseEvent(body)
	if err != nil {
		return nil, apperrors.NewValidationError("body", err.Error())
	}

	switch event.Kind {
	case slack.EventURLVerification:
		return &SlackEventResponse{Challenge: event.Challenge}, nil
	case slack.EventAppUninstalled:
		if err := s.repo.DeleteByWorkspaceID(event.WorkspaceID); err != nil {
			return nil, fmt.Errorf("failed to delete slack integration: %w", err)
		}
		logger.WithContext(ctx).WithField("workspace_id", event.WorkspaceID).Info("Slack app uninstalled")
	}
	return &SlackEventResponse{}, nil
}

// HandleCommand verifies a slash command and returns the reply text
func (s *SlackService) HandleCommand(ctx context.Context, header http.Header, body []byte) (string, error) {
	if s.api == nil {
		return "", apperrors.ErrSlackNotConfigured
	}
	if err := s.api.Verify(header, body); err != nil {
		return "", apperrors.ErrInvalidSignature
	}
	cmd, err := s.api.ParseCommand(body)
	if err != nil {
		return "", apperrors.NewValidationError("body", err.Error())
	}

	fields := strings.Fields(cmd.Text)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "goals") {
		return slackHelpText, nil
	}
	return s.openGoalsReply(ctx, cmd)
}

func (s *SlackService) openGoalsReply(ctx context.Context, cmd *slack.Command) (string, error) {
	integration, err := s.repo.GetByWorkspaceID(cmd.WorkspaceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "This workspace is not connected to an organisation.", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get slack integration: %w", err)
	}

	email, err := s.api.UserEmail(ctx, integration.AccessToken, cmd.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve slack user: %w", err)
	}
	employee, err := s.employeeRepo.GetByEmail(email)
	if err != nil || employee.OrganisationID != integration.OrganisationID || !employee.IsActive {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("failed to get employee: %w", err)
		}
		return "No active employee is registered with your Slack email.", nil
	}
	if s.goals == nil {
		return "Goals are not available right now.", nil
	}

	goals, err := s.goals.OpenGoals(integration.OrganisationID, employee.ID)
	if err != nil {
		return "", err
	}
	if len(goals) == 0 {
		return "You have no open goals.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d open goal(s):", len(goals))
	for _, g := range goals {
		fmt.Fprintf(&b, "\n• %s %s (due %s, %s)", g.DisplayID, g.Description, g.TargetDate, strings.ReplaceAll(string(g.Progress), "_", " "))
	}
	return b.String(), nil
}

// NotifyChannel posts to the organisation's configured channel. It does nothing when
// the organisation has no installation.
func (s *SlackService) NotifyChannel(orgID uuid.UUID, text string) error {
	integration, ok, err := s.connected(orgID)
	if err != nil || !ok || integration.ChannelID == "" {
		return err
	}
	return s.api.PostMessage(context.Background(), integration.AccessToken, integration.ChannelID, text)
}

// NotifyEmployee sends a direct message to the workspace member with email
func (s *SlackService) NotifyEmployee(orgID uuid.UUID, email, text string) error {
	integration, ok, err := s.connected(orgID)
	if err != nil || !ok {
		return err
	}
	return s.api.DirectMessage(context.Background(), integration.AccessToken, email, text)
}

func (s *SlackService) connected(orgID uuid.UUID) (*models.SlackIntegration, bool, error) {
	if s.api == nil {
		return nil, false, nil
	}
	integration, err := s.repo.GetByOrganisationID(orgID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get slack integration: %w", err)
	}
	return integration, true, nil
}

func toSlackStatus(i *models.SlackIntegration) *SlackStatusResponse {
	return &SlackStatusResponse{
		Connected:     true,
		WorkspaceID:   i.WorkspaceID,
		WorkspaceName: i.WorkspaceName,
		ChannelName:   i.ChannelName,
	}
}
