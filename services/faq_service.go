package services

import (
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type FaqCreateParams struct {
	Question   string `json:"question" binding:"required"`
	QuestionAr string `json:"questionAr"`
	Answer     string `json:"answer" binding:"required"`
	AnswerAr   string `json:"answerAr"`
	InApp      *bool  `json:"inApp"`
}

type FaqUpdateParams struct {
	Question   *string `json:"question"`
	QuestionAr *string `json:"questionAr"`
	Answer     *string `json:"answer"`
	AnswerAr   *string `json:"answerAr"`
	InApp      *bool   `json:"inApp"`
}

type FaqService struct {
	db *gorm.DB
}

func NewFaqService(db *gorm.DB) *FaqService {
	return &FaqService{db: db}
}

func (s *FaqService) GetAll() ([]models.Faq, error) {
	var faqs []models.Faq
	if err := s.db.Order("created_at ASC").Find(&faqs).Error; err != nil {
		return nil, types.Internal("ERR_FAQ_LIST")
	}
	return faqs, nil
}

func (s *FaqService) GetByID(id string) (*models.Faq, error) {
	var faq models.Faq
	if err := s.db.First(&faq, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "FAQ_NOT_FOUND", "ERR_FAQ_GET")
	}
	return &faq, nil
}

func (s *FaqService) Create(params FaqCreateParams) (*models.Faq, error) {
	faq := models.Faq{
		Question:   params.Question,
		QuestionAr: params.QuestionAr,
		Answer:     params.Answer,
		AnswerAr:   params.AnswerAr,
		InApp:      true,
	}
	if params.InApp != nil {
		faq.InApp = *params.InApp
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, types.Internal("ERR_FAQ_CREATE")
	}
	return &faq, nil
}

func (s *FaqService) Update(id string, params FaqUpdateParams) (*models.Faq, error) {
	var faq models.Faq
	if err := s.db.First(&faq, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "FAQ_NOT_FOUND", "ERR_FAQ_UPDATE")
	}

	updates := map[string]any{}
	if params.Question != nil {
		updates["question"] = *params.Question
	}
	if params.QuestionAr != nil {
		updates["question_ar"] = *params.QuestionAr
	}
	if params.Answer != nil {
		updates["answer"] = *params.Answer
	}
	if params.AnswerAr != nil {
		updates["answer_ar"] = *params.AnswerAr
	}
	if params.InApp != nil {
		updates["in_app"] = *params.InApp
	}

	if len(updates) > 0 {
		if err := s.db.Model(&faq).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_FAQ_UPDATE")
		}
	}
	return s.GetByID(id)
}

func (s *FaqService) Delete(id string) error {
	var faq models.Faq
	if err := s.db.First(&faq, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "FAQ_NOT_FOUND", "ERR_FAQ_DELETE")
	}
	if err := s.db.Delete(&faq).Error; err != nil {
		return types.Internal("ERR_FAQ_DELETE")
	}
	return nil
}
