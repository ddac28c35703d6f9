package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
	"syana-server/types"
)

// UploadMethods accepts multipart image uploads under the "images" field and
// returns their Cloudinary URLs.
func UploadMethods(uploads *services.UploadService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"images": {
			HTTPMethod: http.MethodPost,
			Auth:       true,
			Handle: func(c *gin.Context) (any, error) {
				form, err := c.MultipartForm()
				if err != nil {
					return nil, types.Validation("ERR_BODY_VALIDATION")
				}
				files := form.File["images"]
				if len(files) == 0 {
					return nil, types.Validation("ERR_NO_FILES")
				}

				urls := make([]string, 0, len(files))
				for _, header := range files {
					url, err := uploads.UploadImage(c.Request.Context(), header, CurrentUser(c).ID)
					if err != nil {
						return nil, err
					}
					urls = append(urls, url)
				}
				return gin.H{"urls": urls}, nil
			},
		},
	}
}
