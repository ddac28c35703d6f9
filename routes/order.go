package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

// OrderMethods exposes the order workflow. Quotes, approval and the derived
// booking all ride on update.
func OrderMethods(orders *services.OrderService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				return orders.GetAll()
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
				return orders.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.OrderCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				params := *Body[services.OrderCreateParams](c)
				if params.ClientID == "" {
					params.ClientID = CurrentUser(c).ID
				}
				return orders.Create(params)
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.OrderUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return orders.Update(id, *Body[services.OrderUpdateParams](c))
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
				if err := orders.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
	}
}
