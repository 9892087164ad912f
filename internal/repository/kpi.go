package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KPIRepository handles database operations for versioned KPIs
type KPIRepository struct {
	db *gorm.DB
}

// NewKPIRepository creates a new KPI repository
func NewKPIRepository(db *gorm.DB) *KPIRepository {
	return &KPIRepository{db: db}
}

// Create creates a KPI together with its mappings
func (r *KPIRepository) Create(kpi *models.KPI) error {
	return r.db.Omit("KRA").Create(kpi).Error
}

// CreateVersion marks previous as superseded and inserts next
func (r *KPIRepository) CreateVersion(previous, next *models.KPI) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.KPI{}).
			Where("id = ?", previous.ID).
			Update("is_latest", false).Error; err != nil {
			return err
		}
		previous.IsLatest = false
		return tx.Omit("KRA").Create(next).Error
	})
}

// UpdateStatus changes the status of a KPI version in place
func (r *KPIRepository) UpdateStatus(id uuid.UUID, status models.KPIStatus) error {
	return r.db.Model(&models.KPI{}).Where("id = ?", id).Update("status", status).Error
}

// GetByID retrieves a KPI version with its KRA and mappings
func (r *KPIRepository) GetByID(orgID, id uuid.UUID) (*models.KPI, error) {
	var kpi models.KPI
	err := r.db.Preload("KRA").Preload("Mappings").
		First(&kpi, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &kpi, nil
}

// CountDisplayIDs returns the number of distinct KPIs, ignoring versions
func (r *KPIRepository) CountDisplayIDs(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.KPI{}).
		Where("organisation_id = ?", orgID).
		Distinct("display_id").
		Count(&count).Error
	return count, err
}

// List retrieves the latest version of each KPI matching the filter
func (r *KPIRepository) List(orgID uuid.UUID, filter KPIFilter, limit, offset int) ([]models.KPI, int64, error) {
	var kpis []models.KPI
	var total int64

	query := r.db.Model(&models.KPI{}).Where("organisation_id = ? AND is_latest = ?", orgID, true)
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(display_id) LIKE ?)", pattern, pattern)
	}
	if filter.KRAID != nil {
		query = query.Where("kra_id = ?", *filter.KRAID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != nil || filter.TeamID != nil || filter.DesignationID != nil {
		mappings := r.db.Model(&models.KPIMapping{}).Select("kpi_id")
		if filter.DepartmentID != nil {
			mappings = mappings.Where("department_id = ?", *filter.DepartmentID)
		}
		if filter.TeamID != nil {
			mappings = mappings.Where("team_id = ?", *filter.TeamID)
		}
		if filter.DesignationID != nil {
			mappings = mappings.Where("designation_id = ?", *filter.DesignationID)
		}
		query = query.Where("id IN (?)", mappings)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("KRA").Preload("Mappings").
		Order("display_id ASC").Limit(limit).Offset(offset).Find(&kpis).Error
	if err != nil {
		return nil, 0, err
	}

	return kpis, total, nil
}

// ListApplicable retrieves published latest KPIs mapped to the designation
func (r *KPIRepository) ListApplicable(orgID, designationID uuid.UUID) ([]models.KPI, error) {
	var kpis []models.KPI
	err := r.db.Preload("KRA").
		Where("organisation_id = ? AND is_latest = ? AND status = ?", orgID, true, models.KPIStatusPublished).
		Where("id IN (?)", r.db.Model(&models.KPIMapping{}).Select("kpi_id").Where("designation_id = ?", designationID)).
		Order("display_id ASC").
		Find(&kpis).Error
	return kpis, err
}
