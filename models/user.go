package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Nationality string

const (
	NationalityEmirati Nationality = "EMIRATI"
	NationalityOther   Nationality = "OTHER"
)

type User struct {
	ID                  string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string         `json:"name" gorm:"size:255;not null"`
	Email               string         `json:"email" gorm:"size:255;uniqueIndex"`
	EmailVerified       bool           `json:"emailVerified" gorm:"default:false"`
	PhoneNumber         string         `json:"phoneNumber" gorm:"size:20;uniqueIndex"`
	PhoneNumberVerified bool           `json:"phoneNumberVerified" gorm:"default:false"`
	Nationality         Nationality    `json:"nationality" gorm:"type:varchar(20)"`
	Image               *string        `json:"image" gorm:"size:255"`
	Settings            datatypes.JSON `json:"settings"`
	CreatedAt           time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:ClientID"`
	Bookings      []Booking      `json:"bookings,omitempty" gorm:"foreignKey:ClientID"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DeviceToken is one entry of the fcmTokens array kept in the settings blob.
type DeviceToken struct {
	Token       string         `json:"token"`
	DeviceInfo  map[string]any `json:"deviceInfo,omitempty"`
	LastUpdated string         `json:"lastUpdated"`
}

// UserSettings is the decoded shape of the settings blob. Unknown keys are
// preserved in Extra so a partial writer never drops another writer's data.
type UserSettings struct {
	FCMToken  string         `json:"fcmToken,omitempty"`
	FCMTokens []DeviceToken  `json:"fcmTokens,omitempty"`
	Lang      string         `json:"lang,omitempty"`
	Extra     map[string]any `json:"-"`
}

// DecodeSettings parses the settings blob. An empty blob decodes to zero settings.
func (u *User) DecodeSettings() (UserSettings, error) {
	var s UserSettings
	if len(u.Settings) == 0 {
		return s, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(u.Settings, &raw); err != nil {
		return s, err
	}

	if v, ok := raw["fcmToken"]; ok {
		_ = json.Unmarshal(v, &s.FCMToken)
		delete(raw, "fcmToken")
	}
	if v, ok := raw["fcmTokens"]; ok {
		_ = json.Unmarshal(v, &s.FCMTokens)
		delete(raw, "fcmTokens")
	}
	if v, ok := raw["lang"]; ok {
		_ = json.Unmarshal(v, &s.Lang)
		delete(raw, "lang")
	}

	if len(raw) > 0 {
		s.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			_ = json.Unmarshal(v, &val)
			s.Extra[k] = val
		}
	}
	return s, nil
}

// EncodeSettings serializes settings back into the blob shape.
func EncodeSettings(s UserSettings) (datatypes.JSON, error) {
	out := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}
	if s.FCMToken != "" {
		out["fcmToken"] = s.FCMToken
	}
	if s.FCMTokens != nil {
		out["fcmTokens"] = s.FCMTokens
	}
	if s.Lang != "" {
		out["lang"] = s.Lang
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
