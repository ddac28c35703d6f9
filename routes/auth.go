package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syana-server/services"
)

func AuthMethods(auth *services.AuthService) map[string]*MethodInfo {
	return map[string]*MethodInfo{
		"send-otp": {
			HTTPMethod: http.MethodPost,
			NewBody:    func() any { return &services.SendOTPParams{} },
			Handle: func(c *gin.Context) (any, error) {
				if err := auth.SendOTP(*Body[services.SendOTPParams](c)); err != nil {
					return nil, err
				}
				return gin.H{"sent": true}, nil
			},
		},
		"verify-otp": {
			HTTPMethod: http.MethodPost,
			NewBody:    func() any { return &services.VerifyOTPParams{} },
			Handle: func(c *gin.Context) (any, error) {
				return auth.VerifyOTP(*Body[services.VerifyOTPParams](c))
			},
		},
	}
}
