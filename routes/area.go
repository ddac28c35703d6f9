package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

func AreaMethods(areas *services.AreaService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				return areas.GetAll()
			},
		},
		"get-by-id": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return areas.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.AreaCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				return areas.Create(*Body[services.AreaCreateParams](c))
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.AreaUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return areas.Update(id, *Body[services.AreaUpdateParams](c))
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
				if err := areas.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
	}
}
