package services

import (
	"time"

	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type UserUpdateParams struct {
	Name        *string             `json:"name"`
	Image       *string             `json:"image"`
	Settings    map[string]any      `json:"settings"`
	Nationality *models.Nationality `json:"nationality" binding:"omitempty,oneof=EMIRATI OTHER"`
	PhoneNumber *string             `json:"phoneNumber"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, types.Internal("ERR_USER_LIST")
	}
	return users, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "USER_NOT_FOUND", "ERR_USER_GET")
	}
	return &user, nil
}

// Update only touches fields that do not affect authentication.
func (s *UserService) Update(id string, params UserUpdateParams) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "USER_NOT_FOUND", "ERR_USER_UPDATE")
	}

	updates := map[string]any{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Image != nil {
		updates["image"] = *params.Image
	}
	if params.Settings != nil {
		updates["settings"] = marshalJSON(params.Settings)
	}
	if params.Nationality != nil {
		updates["nationality"] = *params.Nationality
	}
	if params.PhoneNumber != nil {
		updates["phone_number"] = *params.PhoneNumber
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_USER_UPDATE")
		}
	}
	return s.GetByID(id)
}

func (s *UserService) Delete(id string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "USER_NOT_FOUND", "ERR_USER_DELETE")
	}
	if err := s.db.Delete(&user).Error; err != nil {
		return types.Internal("ERR_USER_DELETE")
	}
	return nil
}

// RegisterDeviceToken stores a device token in the settings blob. Registering
// a token that already exists updates its entry in place, and the legacy
// single fcmToken field always tracks the most recent registration.
func (s *UserService) RegisterDeviceToken(userID, token string, deviceInfo map[string]any) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	settings, err := user.DecodeSettings()
	if err != nil {
		return nil, types.Internal("ERR_USER_SETTINGS")
	}

	entry := models.DeviceToken{
		Token:       token,
		DeviceInfo:  deviceInfo,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}

	replaced := false
	for i := range settings.FCMTokens {
		if settings.FCMTokens[i].Token == token {
			settings.FCMTokens[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		settings.FCMTokens = append(settings.FCMTokens, entry)
	}
	settings.FCMToken = token

	return s.saveSettings(user, settings)
}

// UnregisterDeviceToken removes one device token. When the removed token was
// the legacy current token, the most recently registered remaining token is
// promoted, or the field cleared if none remain.
func (s *UserService) UnregisterDeviceToken(userID, token string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	settings, err := user.DecodeSettings()
	if err != nil {
		return nil, types.Internal("ERR_USER_SETTINGS")
	}
	if len(settings.FCMTokens) == 0 && settings.FCMToken != token {
		return user, nil
	}

	remaining := settings.FCMTokens[:0]
	for _, entry := range settings.FCMTokens {
		if entry.Token != token {
			remaining = append(remaining, entry)
		}
	}
	settings.FCMTokens = remaining

	if settings.FCMToken == token {
		if len(remaining) > 0 {
			settings.FCMToken = remaining[len(remaining)-1].Token
		} else {
			settings.FCMToken = ""
		}
	}

	return s.saveSettings(user, settings)
}

// UpdateFCMToken sets the legacy single-token field only. Kept for older app
// versions that predate multi-device registration.
func (s *UserService) UpdateFCMToken(userID, token string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	settings, err := user.DecodeSettings()
	if err != nil {
		return nil, types.Internal("ERR_USER_SETTINGS")
	}
	settings.FCMToken = token

	return s.saveSettings(user, settings)
}

func (s *UserService) saveSettings(user *models.User, settings models.UserSettings) (*models.User, error) {
	blob, err := models.EncodeSettings(settings)
	if err != nil {
		return nil, types.Internal("ERR_USER_SETTINGS")
	}
	if err := s.db.Model(user).Update("settings", blob).Error; err != nil {
		return nil, types.Internal("ERR_USER_UPDATE")
	}
	user.Settings = blob
	return user, nil
}
