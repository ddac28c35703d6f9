package services

import (
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type AreaCreateParams struct {
	Name      string `json:"name" binding:"required"`
	NameAr    string `json:"nameAr"`
	AreaImage string `json:"areaImage"`
	InApp     *bool  `json:"inApp"`
}

type AreaUpdateParams struct {
	Name      *string `json:"name"`
	NameAr    *string `json:"nameAr"`
	AreaImage *string `json:"areaImage"`
	InApp     *bool   `json:"inApp"`
}

type AreaService struct {
	db *gorm.DB
}

func NewAreaService(db *gorm.DB) *AreaService {
	return &AreaService{db: db}
}

func (s *AreaService) GetAll() ([]models.Area, error) {
	var areas []models.Area
	if err := s.db.Order("name ASC").Find(&areas).Error; err != nil {
		return nil, types.Internal("ERR_AREA_LIST")
	}
	return areas, nil
}

func (s *AreaService) GetByID(id string) (*models.Area, error) {
	var area models.Area
	if err := s.db.First(&area, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "AREA_NOT_FOUND", "ERR_AREA_GET")
	}
	return &area, nil
}

func (s *AreaService) Create(params AreaCreateParams) (*models.Area, error) {
	area := models.Area{
		Name:      params.Name,
		NameAr:    params.NameAr,
		AreaImage: params.AreaImage,
		InApp:     true,
	}
	if params.InApp != nil {
		area.InApp = *params.InApp
	}
	if err := s.db.Create(&area).Error; err != nil {
		return nil, types.Internal("ERR_AREA_CREATE")
	}
	return &area, nil
}

func (s *AreaService) Update(id string, params AreaUpdateParams) (*models.Area, error) {
	var area models.Area
	if err := s.db.First(&area, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "AREA_NOT_FOUND", "ERR_AREA_UPDATE")
	}

	updates := map[string]any{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.NameAr != nil {
		updates["name_ar"] = *params.NameAr
	}
	if params.AreaImage != nil {
		updates["area_image"] = *params.AreaImage
	}
	if params.InApp != nil {
		updates["in_app"] = *params.InApp
	}

	if len(updates) > 0 {
		if err := s.db.Model(&area).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_AREA_UPDATE")
		}
	}
	return s.GetByID(id)
}

func (s *AreaService) Delete(id string) error {
	var area models.Area
	if err := s.db.First(&area, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "AREA_NOT_FOUND", "ERR_AREA_DELETE")
	}
	if err := s.db.Delete(&area).Error; err != nil {
		return types.Internal("ERR_AREA_DELETE")
	}
	return nil
}
