package services

import (
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type ReviewCreateParams struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

type ReviewUpdateParams struct {
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Review *string `json:"review"`
}

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Client").Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, types.Internal("ERR_REVIEW_LIST")
	}
	return reviews, nil
}

func (s *ReviewService) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("Client").First(&review, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "REVIEW_NOT_FOUND", "ERR_REVIEW_GET")
	}
	return &review, nil
}

func (s *ReviewService) Create(clientID string, params ReviewCreateParams) (*models.Review, error) {
	review := models.Review{
		ClientID: clientID,
		Rating:   params.Rating,
		Review:   params.Review,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, types.Internal("ERR_REVIEW_CREATE")
	}
	return s.GetByID(review.ID)
}

// Update rejects writes to reviews the caller does not own.
func (s *ReviewService) Update(id, clientID string, params ReviewUpdateParams) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "REVIEW_NOT_FOUND", "ERR_REVIEW_UPDATE")
	}
	if review.ClientID != clientID {
		return nil, types.Forbidden("ERR_NOT_REVIEW_OWNER")
	}

	updates := map[string]any{}
	if params.Rating != nil {
		updates["rating"] = *params.Rating
	}
	if params.Review != nil {
		updates["review"] = *params.Review
	}

	if len(updates) > 0 {
		if err := s.db.Model(&review).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_REVIEW_UPDATE")
		}
	}
	return s.GetByID(id)
}

func (s *ReviewService) Delete(id, clientID string) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "REVIEW_NOT_FOUND", "ERR_REVIEW_DELETE")
	}
	if review.ClientID != clientID {
		return types.Forbidden("ERR_NOT_REVIEW_OWNER")
	}
	if err := s.db.Delete(&review).Error; err != nil {
		return types.Internal("ERR_REVIEW_DELETE")
	}
	return nil
}
