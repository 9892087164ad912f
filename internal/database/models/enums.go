package models

// Module names a permission-guarded area of the product
type Module string

const (
	ModuleDepartments         Module = "departments"
	ModuleTeams               Module = "teams"
	ModuleDesignations        Module = "designations"
	ModuleRoles               Module = "roles"
	ModuleEmployees           Module = "employees"
	ModuleReviewCycles        Module = "review_cycles"
	ModuleKRAs                Module = "kras"
	ModuleKPIs                Module = "kpis"
	ModuleTeamReviews         Module = "team_reviews"
	ModuleGoals               Module = "goals"
	ModuleReceivedSuggestions Module = "received_suggestions"
	ModuleAnalytics           Module = "analytics"
	ModuleIntegrations        Module = "integrations"
	ModuleUserActivity        Module = "user_activity"
	ModuleOrganisation        Module = "organisation"
)

// AllModules returns every module in display order
func AllModules() []Module {
	return []Module{
		ModuleDepartments,
		ModuleTeams,
		ModuleDesignations,
		ModuleRoles,
		ModuleEmployees,
		ModuleReviewCycles,
		ModuleKRAs,
		ModuleKPIs,
		ModuleTeamReviews,
		ModuleGoals,
		ModuleReceivedSuggestions,
		ModuleAnalytics,
		ModuleIntegrations,
		ModuleUserActivity,
		ModuleOrganisation,
	}
}

// IsValid checks if the Module is known
func (m Module) IsValid() bool {
	for _, known := range AllModules() {
		if m == known {
			return true
		}
	}
	return false
}

// ReviewType identifies who wrote a review and in which phase
type ReviewType string

const (
	ReviewTypeSelf          ReviewType = "self"
	ReviewTypeFirstManager  ReviewType = "first_manager"
	ReviewTypeSecondManager ReviewType = "second_manager"
	ReviewTypeCheckIn       ReviewType = "check_in"
)

// IsValid checks if the ReviewType is valid
func (r ReviewType) IsValid() bool {
	switch r {
	case ReviewTypeSelf, ReviewTypeFirstManager, ReviewTypeSecondManager, ReviewTypeCheckIn:
		return true
	}
	return false
}

// ManagerType distinguishes first and second reporting managers
type ManagerType int

const (
	ManagerTypeFirst  ManagerType = 1
	ManagerTypeSecond ManagerType = 2
)

// GoalProgress defines the lifecycle of a goal
type GoalProgress string

const (
	GoalProgressToDo       GoalProgress = "todo"
	GoalProgressInProgress GoalProgress = "in_progress"
	GoalProgressCompleted  GoalProgress = "completed"
	GoalProgressDeferred   GoalProgress = "deferred"
)

// IsValid checks if the GoalProgress is valid
func (g GoalProgress) IsValid() bool {
	switch g {
	case GoalProgressToDo, GoalProgressInProgress, GoalProgressCompleted, GoalProgressDeferred:
		return true
	}
	return false
}

// SuggestionProgress defines the lifecycle of a suggestion
type SuggestionProgress string

const (
	SuggestionProgressPending    SuggestionProgress = "pending"
	SuggestionProgressInProgress SuggestionProgress = "in_progress"
	SuggestionProgressCompleted  SuggestionProgress = "completed"
	SuggestionProgressDeferred   SuggestionProgress = "deferred"
)

// IsValid checks if the SuggestionProgress is valid
func (s SuggestionProgress) IsValid() bool {
	switch s {
	case SuggestionProgressPending, SuggestionProgressInProgress, SuggestionProgressCompleted, SuggestionProgressDeferred:
		return true
	}
	return false
}

// KPIStatus defines whether a KPI is visible to reviewers
type KPIStatus string

const (
	KPIStatusPublished   KPIStatus = "published"
	KPIStatusUnpublished KPIStatus = "unpublished"
)

// IsValid checks if the KPIStatus is valid
func (k KPIStatus) IsValid() bool {
	return k == KPIStatusPublished || k == KPIStatusUnpublished
}

// Gender of an employee
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid checks if the Gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
