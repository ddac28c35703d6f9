package services

import (
	"time"

	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type ProjectCreateParams struct {
	Headline    string         `json:"headline" binding:"required"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Address     string         `json:"address"`
	Date        time.Time      `json:"date"`
	InApp       *bool          `json:"inApp"`
	HTMLContent map[string]any `json:"htmlContent"`
	Services    []RefID        `json:"services" binding:"omitempty,dive"`
	Areas       []RefID        `json:"areas" binding:"omitempty,dive"`
}

type ProjectUpdateParams struct {
	Headline    *string        `json:"headline"`
	Description *string        `json:"description"`
	Images      []string       `json:"images"`
	Address     *string        `json:"address"`
	Date        *time.Time     `json:"date"`
	InApp       *bool          `json:"inApp"`
	HTMLContent map[string]any `json:"htmlContent"`
	Services    []RefID        `json:"services" binding:"omitempty,dive"`
	Areas       []RefID        `json:"areas" binding:"omitempty,dive"`
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Preload("Services").
		Preload("Areas").
		Order("date DESC").
		Find(&projects).Error
	if err != nil {
		return nil, types.Internal("ERR_PROJECT_LIST")
	}
	return projects, nil
}

func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	err := s.db.
		Preload("Services").
		Preload("Areas").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, types.FromDBError(err, "PROJECT_NOT_FOUND", "ERR_PROJECT_GET")
	}
	return &project, nil
}

func (s *ProjectService) Create(params ProjectCreateParams) (*models.Project, error) {
	project := models.Project{
		Headline:    params.Headline,
		Description: params.Description,
		Address:     params.Address,
		Date:        params.Date,
		InApp:       true,
	}
	if params.InApp != nil {
		project.InApp = *params.InApp
	}
	if params.Images != nil {
		project.Images = marshalJSON(params.Images)
	}
	if params.HTMLContent != nil {
		project.HTMLContent = marshalJSON(params.HTMLContent)
	}
	if len(params.Services) > 0 {
		project.Services = refsToServices(params.Services)
	}
	if len(params.Areas) > 0 {
		project.Areas = refsToAreas(params.Areas)
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, types.Internal("ERR_PROJECT_CREATE")
	}
	return s.GetByID(project.ID)
}

func (s *ProjectService) Update(id string, params ProjectUpdateParams) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "PROJECT_NOT_FOUND", "ERR_PROJECT_UPDATE")
	}

	updates := map[string]any{}
	if params.Headline != nil {
		updates["headline"] = *params.Headline
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Images != nil {
		updates["images"] = marshalJSON(params.Images)
	}
	if params.Address != nil {
		updates["address"] = *params.Address
	}
	if params.Date != nil {
		updates["date"] = *params.Date
	}
	if params.InApp != nil {
		updates["in_app"] = *params.InApp
	}
	if params.HTMLContent != nil {
		updates["html_content"] = marshalJSON(params.HTMLContent)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_PROJECT_UPDATE")
		}
	}
	if params.Services != nil {
		if err := s.db.Model(&project).Association("Services").Replace(refsToServicePtrs(params.Services)); err != nil {
			return nil, types.Internal("ERR_PROJECT_UPDATE")
		}
	}
	if params.Areas != nil {
		if err := s.db.Model(&project).Association("Areas").Replace(refsToAreaPtrs(params.Areas)); err != nil {
			return nil, types.Internal("ERR_PROJECT_UPDATE")
		}
	}

	return s.GetByID(id)
}

func (s *ProjectService) Delete(id string) error {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "PROJECT_NOT_FOUND", "ERR_PROJECT_DELETE")
	}
	if err := s.db.Model(&project).Association("Services").Clear(); err != nil {
		return types.Internal("ERR_PROJECT_DELETE")
	}
	if err := s.db.Model(&project).Association("Areas").Clear(); err != nil {
		return types.Internal("ERR_PROJECT_DELETE")
	}
	if err := s.db.Delete(&project).Error; err != nil {
		return types.Internal("ERR_PROJECT_DELETE")
	}
	return nil
}
