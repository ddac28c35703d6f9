package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

func CompanyMethods(companies *services.CompanyService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				return companies.GetAll()
			},
		},
		"get-by-id": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return companies.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.CompanyCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				return companies.Create(*Body[services.CompanyCreateParams](c))
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.CompanyUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return companies.Update(id, *Body[services.CompanyUpdateParams](c))
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
				if err := companies.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
	}
}
