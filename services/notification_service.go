package services

import (
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type NotificationCreateParams struct {
	UserID    string                  `json:"userId"`
	Message   string                  `json:"message" binding:"required"`
	MessageAr string                  `json:"messageAr"`
	Type      models.NotificationType `json:"type" binding:"omitempty,oneof=SAYENLY REMINDER QUOTE"`
	Route     map[string]any          `json:"route"`
}

type NotificationUpdateParams struct {
	Read *bool `json:"read"`
}

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) GetAllForUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, types.Internal("ERR_NOTIFICATION_LIST")
	}
	return notifications, nil
}

func (s *NotificationService) GetByID(id string) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "NOTIFICATION_NOT_FOUND", "ERR_NOTIFICATION_GET")
	}
	return &notification, nil
}

func (s *NotificationService) Create(params NotificationCreateParams) (*models.Notification, error) {
	notification := models.Notification{
		UserID:    params.UserID,
		Message:   params.Message,
		MessageAr: params.MessageAr,
		Type:      params.Type,
	}
	if params.Route != nil {
		notification.Route = marshalJSON(params.Route)
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return nil, types.Internal("ERR_NOTIFICATION_CREATE")
	}
	return &notification, nil
}

// MarkRead flips one notification to read. Ownership is enforced: a user can
// only flip their own records.
func (s *NotificationService) MarkRead(id, userID string) (*models.Notification, error) {
	return s.SetRead(id, userID, true)
}

// SetRead sets a notification's read flag in either direction, so a client
// can also mark a record unread again.
func (s *NotificationService) SetRead(id, userID string, read bool) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, types.FromDBError(err, "NOTIFICATION_NOT_FOUND", "ERR_NOTIFICATION_UPDATE")
	}

	if notification.Read != read {
		if err := s.db.Model(&notification).Update("read", read).Error; err != nil {
			return nil, types.Internal("ERR_NOTIFICATION_UPDATE")
		}
	}
	return &notification, nil
}

// MarkAllRead flips every unread notification for the user. Already-read
// records are untouched, so repeated calls are idempotent.
func (s *NotificationService) MarkAllRead(userID string) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, types.Internal("ERR_NOTIFICATION_UPDATE")
	}
	return result.RowsAffected, nil
}

func (s *NotificationService) Delete(id string) error {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "NOTIFICATION_NOT_FOUND", "ERR_NOTIFICATION_DELETE")
	}
	if err := s.db.Delete(&notification).Error; err != nil {
		return types.Internal("ERR_NOTIFICATION_DELETE")
	}
	return nil
}
