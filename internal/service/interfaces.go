package service

import (
	"context"
	"net/http"
	"time"

	"performance-backend/internal/auth"
	"performance-backend/internal/database/models"
	"performance-backend/internal/repository"
	"performance-backend/internal/slack"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ActivityRecorder appends entries to the organisation's audit trail. Failures are logged, never returned.
type ActivityRecorder interface {
	Record(orgID, employeeID uuid.UUID, activity, description string)
}

// Notifier delivers Slack messages for an organisation. A missing installation is not an error.
type Notifier interface {
	NotifyChannel(orgID uuid.UUID, text string) error
	NotifyEmployee(orgID uuid.UUID, email, text string) error
}

// DirectorySearcher looks people up in the corporate directory
type DirectorySearcher interface {
	Search(query string) ([]DirectoryEntry, error)
}

// OpenGoalLister lists the goals an employee still has to work on
type OpenGoalLister interface {
	OpenGoals(orgID, employeeID uuid.UUID) ([]GoalResponse, error)
}

// SlackAPI is the part of the Slack client used by SlackService
type SlackAPI interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*slack.Installation, error)
	Verify(header http.Header, body []byte) error
	ParseEvent(body []byte) (*slack.Event, error)
	ParseCommand(body []byte) (*slack.Command, error)
	PostMessage(ctx context.Context, token, channelID, text string) error
	DirectMessage(ctx context.Context, token, email, text string) error
	UserEmail(ctx context.Context, token, userID string) (string, error)
}

// StateSigner signs the OAuth state for a Slack install
type StateSigner interface {
	GenerateState(organisationID, employeeID uuid.UUID) (string, error)
	ValidateState(state string) (*auth.StateClaims, error)
}

// OrganisationServiceInterface defines the interface for organisation service
type OrganisationServiceInterface interface {
	Onboard(req *OnboardOrganisationRequest) (*OnboardResponse, error)
	Get(actor Actor) (*OrganisationResponse, error)
	Update(actor Actor, req *UpdateOrganisationRequest) (*OrganisationResponse, error)
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(actor Actor, req *CreateDepartmentsRequest) ([]DepartmentResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*DepartmentResponse, error)
	List(actor Actor, search string, page, pageSize int) (*PagedResponse[DepartmentResponse], error)
	Update(actor Actor, id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(actor Actor, req *CreateTeamsRequest) ([]TeamResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*TeamResponse, error)
	List(actor Actor, departmentID *uuid.UUID, search string, page, pageSize int) (*PagedResponse[TeamResponse], error)
	Update(actor Actor, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
}

// DesignationServiceInterface defines the interface for designation service
type DesignationServiceInterface interface {
	Create(actor Actor, req *CreateDesignationsRequest) ([]DesignationResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*DesignationResponse, error)
	List(actor Actor, filter repository.HierarchyFilter, page, pageSize int) (*PagedResponse[DesignationResponse], error)
	Update(actor Actor, id uuid.UUID, req *UpdateDesignationRequest) (*DesignationResponse, error)
}

// RoleServiceInterface defines the interface for role service
type RoleServiceInterface interface {
	Create(actor Actor, req *RoleRequest) (*RoleResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*RoleResponse, error)
	List(actor Actor, search string, page, pageSize int) (*PagedResponse[RoleResponse], error)
	Update(actor Actor, id uuid.UUID, req *RoleRequest) (*RoleResponse, error)
	HasPermission(employeeID uuid.UUID, module models.Module, edit bool) (bool, error)
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(actor Actor, req *EmployeeRequest) (*EmployeeResponse, error)
	Update(actor Actor, id uuid.UUID, req *EmployeeRequest) (*EmployeeResponse, error)
	SetStatus(actor Actor, id uuid.UUID, active bool) (*EmployeeResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*EmployeeResponse, error)
	List(actor Actor, req EmployeeListRequest) (*PagedResponse[EmployeeResponse], error)
	GetReportees(actor Actor) ([]EmployeeResponse, error)
	SearchDirectory(query string) ([]DirectoryEntry, error)
}

// ReviewCycleServiceInterface defines the interface for review cycle service
type ReviewCycleServiceInterface interface {
	Create(actor Actor, req *ReviewCycleRequest) (*ReviewCycleResponse, error)
	Update(actor Actor, id uuid.UUID, req *ReviewCycleRequest) (*ReviewCycleResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*ReviewCycleResponse, error)
	List(actor Actor, page, pageSize int) (*PagedResponse[ReviewCycleResponse], error)
	GetActive(actor Actor) (*ActiveReviewCycleResponse, error)
}

// KRAServiceInterface defines the interface for KRA service
type KRAServiceInterface interface {
	List(actor Actor) ([]KRAResponse, error)
	Create(actor Actor, req *CreateKRARequest) (*KRAResponse, error)
	UpdateWeightages(actor Actor, req *UpdateWeightagesRequest) ([]KRAResponse, error)
	WeightagesAt(orgID uuid.UUID, day time.Time) (map[uuid.UUID]int, error)
}

// KPIServiceInterface defines the interface for KPI service
type KPIServiceInterface interface {
	Create(actor Actor, req *KPIRequest) (*KPIResponse, error)
	Update(actor Actor, id uuid.UUID, req *KPIRequest) (*KPIResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*KPIResponse, error)
	List(actor Actor, req KPIListRequest) (*PagedResponse[KPIResponse], error)
	ListForEmployee(actor Actor, employeeID uuid.UUID) ([]KPIResponse, error)
}

// ReviewServiceInterface defines the interface for review service
type ReviewServiceInterface interface {
	SubmitSelfReview(actor Actor, req *SubmitReviewRequest) (*ReviewResponse, error)
	SubmitManagerReview(actor Actor, req *SubmitReviewRequest) (*ReviewResponse, error)
	SubmitCheckIn(actor Actor, req *SubmitCheckInRequest) (*ReviewResponse, error)
	Get(actor Actor, cycleID, reviewToID uuid.UUID, reviewType models.ReviewType) (*ReviewResponse, error)
	TeamStatus(actor Actor, cycleID uuid.UUID) ([]TeamReviewStatus, error)
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	Create(actor Actor, req *CreateGoalRequest) (*GoalResponse, error)
	UpdateProgress(actor Actor, id uuid.UUID, req *UpdateGoalProgressRequest) (*GoalResponse, error)
	List(actor Actor, req GoalListRequest) (*PagedResponse[GoalResponse], error)
	OpenGoals(orgID, employeeID uuid.UUID) ([]GoalResponse, error)
}

// SuggestionServiceInterface defines the interface for suggestion service
type SuggestionServiceInterface interface {
	Create(actor Actor, req *SuggestionRequest) (*SuggestionResponse, error)
	Update(actor Actor, id uuid.UUID, req *SuggestionRequest) (*SuggestionResponse, error)
	ListMine(actor Actor, page, pageSize int) (*PagedResponse[SuggestionResponse], error)
	ListReceived(actor Actor, progress models.SuggestionProgress, page, pageSize int) (*PagedResponse[SuggestionResponse], error)
	UpdateProgress(actor Actor, id uuid.UUID, req *SuggestionProgressRequest) (*SuggestionResponse, error)
	ListComments(actor Actor, id uuid.UUID) ([]SuggestionCommentResponse, error)
}

// UserActivityServiceInterface defines the interface for the audit trail
type UserActivityServiceInterface interface {
	ActivityRecorder
	List(actor Actor, page, pageSize int) (*PagedResponse[UserActivityResponse], error)
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	RatingsDistribution(ctx context.Context, actor Actor, cycleID uuid.UUID) (*RatingsDistributionResponse, error)
	ReviewStatus(ctx context.Context, actor Actor, cycleID uuid.UUID) (*ReviewStatusResponse, error)
	EmployeesData(ctx context.Context, actor Actor) (*EmployeesDataResponse, error)
	Export(actor Actor, cycleID uuid.UUID) ([]byte, error)
}

// SlackServiceInterface defines the interface for Slack service
type SlackServiceInterface interface {
	Notifier
	InstallURL(actor Actor) (*SlackInstallResponse, error)
	CompleteInstall(ctx context.Context, code, state string) (*SlackStatusResponse, error)
	Disconnect(actor Actor) error
	Status(actor Actor) (*SlackStatusResponse, error)
	HandleEvent(ctx context.Context, header http.Header, body []byte) (*SlackEventResponse, error)
	HandleCommand(ctx context.Context, header http.Header, body []byte) (string, error)
}
