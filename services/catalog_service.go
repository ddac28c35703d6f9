package services

import (
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type ServiceCreateParams struct {
	Name             string `json:"name" binding:"required"`
	NameAr           string `json:"nameAr"`
	Description      string `json:"description"`
	ServiceCardImage string `json:"serviceCardImage"`
	InApp            *bool  `json:"inApp"`
}

type ServiceUpdateParams struct {
	Name             *string `json:"name"`
	NameAr           *string `json:"nameAr"`
	Description      *string `json:"description"`
	PastJobs         *int    `json:"pastJobs"`
	ServiceCardImage *string `json:"serviceCardImage"`
	InApp            *bool   `json:"inApp"`
}

// CatalogService manages the service catalogue shown in the client app.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) GetAll() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("name ASC").Find(&services).Error; err != nil {
		return nil, types.Internal("ERR_SERVICE_LIST")
	}
	return services, nil
}

func (s *CatalogService) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "SERVICE_NOT_FOUND", "ERR_SERVICE_GET")
	}
	return &service, nil
}

func (s *CatalogService) Create(params ServiceCreateParams) (*models.Service, error) {
	service := models.Service{
		Name:             params.Name,
		NameAr:           params.NameAr,
		Description:      params.Description,
		ServiceCardImage: params.ServiceCardImage,
		InApp:            true,
	}
	if params.InApp != nil {
		service.InApp = *params.InApp
	}
	if err := s.db.Create(&service).Error; err != nil {
		return nil, types.Internal("ERR_SERVICE_CREATE")
	}
	return &service, nil
}

func (s *CatalogService) Update(id string, params ServiceUpdateParams) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "SERVICE_NOT_FOUND", "ERR_SERVICE_UPDATE")
	}

	updates := map[string]any{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.NameAr != nil {
		updates["name_ar"] = *params.NameAr
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.PastJobs != nil {
		updates["past_jobs"] = *params.PastJobs
	}
	if params.ServiceCardImage != nil {
		updates["service_card_image"] = *params.ServiceCardImage
	}
	if params.InApp != nil {
		updates["in_app"] = *params.InApp
	}

	if len(updates) > 0 {
		if err := s.db.Model(&service).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_SERVICE_UPDATE")
		}
	}
	return s.GetByID(id)
}

func (s *CatalogService) Delete(id string) error {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "SERVICE_NOT_FOUND", "ERR_SERVICE_DELETE")
	}
	if err := s.db.Delete(&service).Error; err != nil {
		return types.Internal("ERR_SERVICE_DELETE")
	}
	return nil
}
