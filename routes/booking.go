package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

func BookingMethods(bookings *services.BookingService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				return bookings.GetAll()
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
				return bookings.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.BookingCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				params := *Body[services.BookingCreateParams](c)
				if params.ClientID == "" {
					params.ClientID = CurrentUser(c).ID
				}
				return bookings.Create(params)
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.BookingUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return bookings.Update(id, *Body[services.BookingUpdateParams](c))
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
				if err := bookings.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
	}
}
