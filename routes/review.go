package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

// ReviewMethods enforces ownership on mutation: only the author can change or
// remove a review.
func ReviewMethods(reviews *services.ReviewService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"get-all": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				return reviews.GetAll()
			},
		},
		"get-by-id": {
			HTTPMethod: http.MethodGet,
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return reviews.GetByID(id)
			},
		},
		"create": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			NewBody:    func() any { return &services.ReviewCreateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				return reviews.Create(CurrentUser(c).ID, *Body[services.ReviewCreateParams](c))
			},
		},
		"update": {
			HTTPMethod: http.MethodPut,
			Auth:       true,
			NewBody:    func() any { return &services.ReviewUpdateParams{} },
			Handle: func(c *gin.Context) (any, error) {
				id, err := QueryID(c)
				if err != nil {
					return nil, err
				}
				return reviews.Update(id, CurrentUser(c).ID, *Body[services.ReviewUpdateParams](c))
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
				if err := reviews.Delete(id, CurrentUser(c).ID); err != nil {
					return nil, err
				}
				return gin.H{"deleted": true}, nil
			},
		},
	}
}
