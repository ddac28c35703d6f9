package services

import (
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type CompanyCreateParams struct {
	Name           string   `json:"name" binding:"required"`
	NameAr         string   `json:"nameAr"`
	Logo           string   `json:"logo"`
	PhoneNumbers   []string `json:"phoneNumbers"`
	EmailAddresses []string `json:"emailAddresses"`
	Addresses      []string `json:"addresses"`
	Services       []RefID  `json:"services" binding:"omitempty,dive"`
}

type CompanyUpdateParams struct {
	Name           *string  `json:"name"`
	NameAr         *string  `json:"nameAr"`
	Logo           *string  `json:"logo"`
	PhoneNumbers   []string `json:"phoneNumbers"`
	EmailAddresses []string `json:"emailAddresses"`
	Addresses      []string `json:"addresses"`
	TotalEarnings  *float64 `json:"totalEarnings"`
	Services       []RefID  `json:"services" binding:"omitempty,dive"`
}

type CompanyService struct {
	db *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{db: db}
}

func (s *CompanyService) GetAll() ([]models.Company, error) {
	var companies []models.Company
	err := s.db.Preload("Services").Order("created_at DESC").Find(&companies).Error
	if err != nil {
		return nil, types.Internal("ERR_COMPANY_LIST")
	}
	return companies, nil
}

func (s *CompanyService) GetByID(id string) (*models.Company, error) {
	var company models.Company
	if err := s.db.Preload("Services").First(&company, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "COMPANY_NOT_FOUND", "ERR_COMPANY_GET")
	}
	return &company, nil
}

func (s *CompanyService) Create(params CompanyCreateParams) (*models.Company, error) {
	company := models.Company{
		Name:   params.Name,
		NameAr: params.NameAr,
		Logo:   params.Logo,
	}
	if params.PhoneNumbers != nil {
		company.PhoneNumbers = marshalJSON(params.PhoneNumbers)
	}
	if params.EmailAddresses != nil {
		company.EmailAddresses = marshalJSON(params.EmailAddresses)
	}
	if params.Addresses != nil {
		company.Addresses = marshalJSON(params.Addresses)
	}
	if len(params.Services) > 0 {
		company.Services = refsToServices(params.Services)
	}

	if err := s.db.Create(&company).Error; err != nil {
		return nil, types.Internal("ERR_COMPANY_CREATE")
	}
	return s.GetByID(company.ID)
}

func (s *CompanyService) Update(id string, params CompanyUpdateParams) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "COMPANY_NOT_FOUND", "ERR_COMPANY_UPDATE")
	}

	updates := map[string]any{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.NameAr != nil {
		updates["name_ar"] = *params.NameAr
	}
	if params.Logo != nil {
		updates["logo"] = *params.Logo
	}
	if params.PhoneNumbers != nil {
		updates["phone_numbers"] = marshalJSON(params.PhoneNumbers)
	}
	if params.EmailAddresses != nil {
		updates["email_addresses"] = marshalJSON(params.EmailAddresses)
	}
	if params.Addresses != nil {
		updates["addresses"] = marshalJSON(params.Addresses)
	}
	if params.TotalEarnings != nil {
		updates["total_earnings"] = *params.TotalEarnings
	}

	if len(updates) > 0 {
		if err := s.db.Model(&company).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_COMPANY_UPDATE")
		}
	}
	if params.Services != nil {
		if err := s.db.Model(&company).Association("Services").Replace(refsToServicePtrs(params.Services)); err != nil {
			return nil, types.Internal("ERR_COMPANY_UPDATE")
		}
	}

	return s.GetByID(id)
}

func (s *CompanyService) Delete(id string) error {
	var company models.Company
	if err := s.db.First(&company, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "COMPANY_NOT_FOUND", "ERR_COMPANY_DELETE")
	}
	if err := s.db.Model(&company).Association("Services").Clear(); err != nil {
		return types.Internal("ERR_COMPANY_DELETE")
	}
	if err := s.db.Delete(&company).Error; err != nil {
		return types.Internal("ERR_COMPANY_DELETE")
	}
	return nil
}
