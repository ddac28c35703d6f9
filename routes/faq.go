package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

func FaqMethods(faqs *services.FaqService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				return faqs.GetAll()
			},
		},
		"get-by-id": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return faqs.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.FaqCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				return faqs.Create(*Body[services.FaqCreateParams](c))
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.FaqUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return faqs.Update(id, *Body[services.FaqUpdateParams](c))
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
				if err := faqs.Delete(id); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
	}
}
