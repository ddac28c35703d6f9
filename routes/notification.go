package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

type sendSystemBody struct {
	UserID    string         `json:"userId" binding:"required"`
	Message   string         `json:"message" binding:"required"`
	MessageAr string         `json:"messageAr"`
	Route     map[string]any `json:"route"`
}

func NotificationMethods(notifications *services.NotificationService, notifier *services.Notifier) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				return notifications.GetAllForUser(CurrentUser(c).ID)
			},
		},
		"get-by-id": {
			HTTPMethod: http.MethodGet,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return notifications.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.NotificationCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				params := *Body[services.NotificationCreateParams](c)
				if params.UserID == "" {
					params.UserID = CurrentUser(c).ID
				}
				return notifications.Create(params)
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.NotificationUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				read := true
				if params := Body[services.NotificationUpdateParams](c); params.Read != nil {
					read = *params.Read
				}
				return notifications.SetRead(id, CurrentUser(c).ID, read)
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
				if err := notifications.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
		"read-one": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return notifications.MarkRead(id, CurrentUser(c).ID)
			},
		},
		"read-all": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				updated, err := notifications.MarkAllRead(CurrentUser(c).ID)
				if err != nil {
					return nil, err
				}
				return gin.H{"updated": updated}, nil
			},
		},
		"send-system": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &sendSystemBody{} },
			Handle: func(c *gin.Context) (any, error) {
				body := Body[sendSystemBody](c)
				return notifier.SendSystem(body.UserID, body.Message, body.MessageAr, body.Route)
			},
		},
	}
}
