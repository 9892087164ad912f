package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"performance-backend/internal/auth"
	"performance-backend/internal/config"
	"performance-backend/internal/database"
	"performance-backend/internal/database/models"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"
	"performance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SeedFile describes one organisation with its hierarchy and people
type SeedFile struct {
	Organisation OrganisationData `yaml:"organisation"`
	Admin        PersonData       `yaml:"admin"`
	Departments  []DepartmentData `yaml:"departments"`
	Employees    []EmployeeData   `yaml:"employees"`
}

type OrganisationData struct {
	Name      string `yaml:"name"`
	Domain    string `yaml:"domain"`
	ContactNo string `yaml:"contact_no"`
	TimeZone  string `yaml:"time_zone"`
}

type PersonData struct {
	EmployeeCode string `yaml:"employee_code"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Email        string `yaml:"email"`
	Gender       string `yaml:"gender,omitempty"`
}

type DepartmentData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Teams       []TeamData `yaml:"teams"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description,omitempty"`
	Designations []string `yaml:"designations"`
}

type EmployeeData struct {
	PersonData    `yaml:",inline"`
	DateOfJoining string `yaml:"date_of_joining"`
	Role          string `yaml:"role"`
	Department    string `yaml:"department"`
	Team          string `yaml:"team"`
	Designation   string `yaml:"designation"`
	FirstManager  string `yaml:"first_manager,omitempty"`
	SecondManager string `yaml:"second_manager,omitempty"`
}

// seeder creates records through the service layer so seeded data passes the same checks as API input
type seeder struct {
	orgRepo      *repository.OrganisationRepository
	organisation *service.OrganisationService
	departments  *service.DepartmentService
	teams        *service.TeamService
	designations *service.DesignationService
	roles        *service.RoleService
	employees    *service.EmployeeService
	auth         *auth.AuthService
}

func main() {
	log := logger.New()
	log.Info("Loading initial data from YAML files")

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	// Postgres may still be starting when run from docker compose
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	s, err := newSeeder(db, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize services")
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if err := s.loadDir(dataDir); err != nil {
		log.WithError(err).Fatal("Failed to load data from YAML files")
	}

	log.Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			logger.New().WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func newSeeder(db *gorm.DB, cfg *config.Config) (*seeder, error) {
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	orgRepo := repository.NewOrganisationRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	designationRepo := repository.NewDesignationRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	activity := service.NewUserActivityService(repository.NewUserActivityRepository(db))

	return &seeder{
		orgRepo:      orgRepo,
		organisation: service.NewOrganisationService(orgRepo, employeeRepo, activity, validate),
		departments:  service.NewDepartmentService(departmentRepo, activity, validate),
		teams:        service.NewTeamService(teamRepo, departmentRepo, activity, validate),
		designations: service.NewDesignationService(designationRepo, teamRepo, activity, validate),
		roles:        service.NewRoleService(roleRepo, activity, validate),
		employees:    service.NewEmployeeService(employeeRepo, roleRepo, departmentRepo, teamRepo, designationRepo, nil, activity, validate),
		auth:         authService,
	}, nil
}

func (s *seeder) loadDir(dataDir string) error {
	files, err := filepath.Glob(filepath.Join(dataDir, "*.yaml"))
	if err != nil {
		return err
	}
	for _, path := range files {
		var seed SeedFile
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &seed); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := s.load(&seed); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func (s *seeder) load(seed *SeedFile) error {
	log := logger.New().WithField("domain", seed.Organisation.Domain)

	if _, err := s.orgRepo.GetByDomain(seed.Organisation.Domain); err == nil {
		log.Info("Organisation already exists, skipping")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	onboarded, err := s.organisation.Onboard(&service.OnboardOrganisationRequest{
		Name:      seed.Organisation.Name,
		Domain:    seed.Organisation.Domain,
		ContactNo: seed.Organisation.ContactNo,
		TimeZone:  seed.Organisation.TimeZone,
		Admin: service.OnboardAdminRequest{
			EmployeeCode: seed.Admin.EmployeeCode,
			FirstName:    seed.Admin.FirstName,
			LastName:     seed.Admin.LastName,
			Email:        seed.Admin.Email,
			Gender:       models.Gender(seed.Admin.Gender),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to onboard organisation: %w", err)
	}
	admin := service.Actor{
		EmployeeID:     onboarded.AdminID,
		OrganisationID: onboarded.Organisation.ID,
		Email:          seed.Admin.Email,
	}
	s.printToken(admin.EmployeeID, admin.OrganisationID, admin.Email)

	designations, err := s.createHierarchy(admin, seed.Departments)
	if err != nil {
		return err
	}

	roles, err := s.roles.List(admin, "", 1, 100)
	if err != nil {
		return err
	}
	roleIDs := make(map[string]uuid.UUID, len(roles.Items))
	for _, role := range roles.Items {
		roleIDs[strings.ToLower(role.Name)] = role.ID
	}

	// Managers must exist before their reportees, so the YAML lists them first
	codes := map[string]uuid.UUID{seed.Admin.EmployeeCode: admin.EmployeeID}
	for _, e := range seed.Employees {
		roleID, ok := roleIDs[strings.ToLower(e.Role)]
		if !ok {
			return fmt.Errorf("employee %s: unknown role %q", e.EmployeeCode, e.Role)
		}
		placement, ok := designations[hierarchyKey(e.Department, e.Team, e.Designation)]
		if !ok {
			return fmt.Errorf("employee %s: unknown designation %s/%s/%s", e.EmployeeCode, e.Department, e.Team, e.Designation)
		}
		req := &service.EmployeeRequest{
			EmployeeCode:  e.EmployeeCode,
			FirstName:     e.FirstName,
			LastName:      e.LastName,
			Email:         e.Email,
			Gender:        models.Gender(e.Gender),
			DateOfJoining: e.DateOfJoining,
			IsActive:      true,
			RoleID:        roleID,
			DepartmentID:  placement.DepartmentID,
			TeamID:        placement.TeamID,
			DesignationID: placement.ID,
		}
		if req.FirstManagerID, err = managerID(codes, e.FirstManager); err != nil {
			return err
		}
		if req.SecondManagerID, err = managerID(codes, e.SecondManager); err != nil {
			return err
		}

		created, err := s.employees.Create(admin, req)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", e.EmployeeCode, err)
		}
		codes[e.EmployeeCode] = created.ID
		s.printToken(created.ID, admin.OrganisationID, created.Email)
	}

	log.WithField("employees", len(seed.Employees)+1).Info("Organisation seeded")
	return nil
}

// createHierarchy creates departments, teams and designations and indexes designations by path
func (s *seeder) createHierarchy(admin service.Actor, departments []DepartmentData) (map[string]service.DesignationResponse, error) {
	out := make(map[string]service.DesignationResponse)
	if len(departments) == 0 {
		return out, nil
	}

	deptReq := &service.CreateDepartmentsRequest{}
	for _, d := range departments {
		deptReq.Departments = append(deptReq.Departments, service.CreateDepartmentRequest{
			Name: d.Name, Description: d.Description, IsActive: true,
		})
	}
	createdDepts, err := s.departments.Create(admin, deptReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create departments: %w", err)
	}

	for i, d := range departments {
		if len(d.Teams) == 0 {
			continue
		}
		teamReq := &service.CreateTeamsRequest{}
		for _, t := range d.Teams {
			teamReq.Teams = append(teamReq.Teams, service.CreateTeamRequest{
				DepartmentID: createdDepts[i].ID, Name: t.Name, Description: t.Description, IsActive: true,
			})
		}
		createdTeams, err := s.teams.Create(admin, teamReq)
		if err != nil {
			return nil, fmt.Errorf("failed to create teams of %s: %w", d.Name, err)
		}

		for j, t := range d.Teams {
			if len(t.Designations) == 0 {
				continue
			}
			designationReq := &service.CreateDesignationsRequest{}
			for _, name := range t.Designations {
				designationReq.Designations = append(designationReq.Designations, service.CreateDesignationRequest{
					DepartmentID: createdDepts[i].ID, TeamID: createdTeams[j].ID, Name: name, IsActive: true,
				})
			}
			created, err := s.designations.Create(admin, designationReq)
			if err != nil {
				return nil, fmt.Errorf("failed to create designations of %s: %w", t.Name, err)
			}
			for k, name := range t.Designations {
				out[hierarchyKey(d.Name, t.Name, name)] = created[k]
			}
		}
	}
	return out, nil
}

func (s *seeder) printToken(employeeID, orgID uuid.UUID, email string) {
	token, err := s.auth.GenerateJWT(employeeID, orgID, email)
	if err != nil {
		logger.New().WithError(err).WithField("email", email).Warn("Failed to generate development token")
		return
	}
	fmt.Printf("%s\t%s\n", email, token)
}

func managerID(codes map[string]uuid.UUID, code string) (*uuid.UUID, error) {
	if code == "" {
		return nil, nil
	}
	id, ok := codes[code]
	if !ok {
		return nil, fmt.Errorf("manager %s must be listed before its reportees", code)
	}
	return &id, nil
}

func hierarchyKey(department, team, designation string) string {
	return strings.ToLower(department + "/" + team + "/" + designation)
}
