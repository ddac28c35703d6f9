package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

type deviceTokenBody struct {
	Token      string         `json:"token" binding:"required"`
	DeviceInfo map[string]any `json:"deviceInfo"`
}

type fcmTokenBody struct {
	Token string `json:"token" binding:"required"`
}

// UserMethods covers profile CRUD plus the device-token bookkeeping the
// mobile app drives on login and logout.
func UserMethods(users *services.UserService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				return users.GetAll()
			},
		},
		"get-by-id": {
			HTTPMethod: http.MethodGet,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				id := c.Query("id")
				if id == "" {
					id = CurrentUser(c).ID
				}
				return users.GetByID(id)
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.UserUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id := c.Query("id")
				if id == "" {
					id = CurrentUser(c).ID
				}
				return users.Update(id, *Body[services.UserUpdateParams](c))
			},
		},
		"delete": {
			HTTPMethod: http.MethodDelete,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				if err := users.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
		"register-device": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &deviceTokenBody{} },
			Handle: func(c *gin.Context) (any, error) {
				body := Body[deviceTokenBody](c)
				return users.RegisterDeviceToken(CurrentUser(c).ID, body.Token, body.DeviceInfo)
			},
		},
		"unregister-device": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &fcmTokenBody{} },
			Handle: func(c *gin.Context) (any, error) {
				body := Body[fcmTokenBody](c)
				return users.UnregisterDeviceToken(CurrentUser(c).ID, body.Token)
			},
		},
		"update-fcm-token": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &fcmTokenBody{} },
			Handle: func(c *gin.Context) (any, error) {
				body := Body[fcmTokenBody](c)
				return users.UpdateFCMToken(CurrentUser(c).ID, body.Token)
			},
		},
	}
}
