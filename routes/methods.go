package routes

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"syana-server/middleware"
	"syana-server/models"
	"syana-server/types"
)

// HandlerFunc is a dispatcher-bound handler. Returning an error hands it to
// the single translation point in dispatch; returning (data, nil) serializes
// data with status 200.
type HandlerFunc func(c *gin.Context) (any, error)

// MethodInfo binds one logical method name to its HTTP verb, auth requirement,
// body schema and handler.
type MethodInfo struct {
	HTTPMethod string
	Auth       bool
	NewBody    func() any
	Handle     HandlerFunc
}

const contextBodyKey = "body"

// Body returns the validated request body bound by the dispatcher.
func Body[T any](c *gin.Context) *T {
	v, _ := c.Get(contextBodyKey)
	body, _ := v.(*T)
	return body
}

// Dispatcher mounts entity method tables under /<entity>/:method and runs the
// verb check, auth check and body validation before the bound handler.
type Dispatcher struct {
	db     *gorm.DB
	secret string
}

func NewDispatcher(db *gorm.DB, secret string) *Dispatcher {
	return &Dispatcher{db: db, secret: secret}
}

// Mount registers an entity's method table on the router. Extra middleware
// runs before dispatch.
func (d *Dispatcher) Mount(r gin.IRouter, entity string, methods map[string]*MethodInfo, mws ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mws...), d.dispatch(methods))
	r.Any("/"+entity+"/:method", handlers...)
}

func (d *Dispatcher) dispatch(methods map[string]*MethodInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("method")

		info, ok := methods[name]
		if !ok {
			RenderError(c, types.Validation("INVALID_METHOD_KEY"))
			return
		}

		if !strings.EqualFold(c.Request.Method, info.HTTPMethod) {
			RenderError(c, types.NewAppError("INVALID_HTTP_METHOD", http.StatusMethodNotAllowed))
			return
		}

		if info.Auth {
			user, err := middleware.Authenticate(d.db, d.secret, c)
			if err != nil {
				RenderError(c, err)
				return
			}
			c.Set(middleware.ContextUserKey, user)
			c.Set(middleware.ContextUserIDKey, user.ID)
		}

		if info.NewBody != nil {
			body := info.NewBody()
			if err := c.ShouldBindJSON(body); err != nil {
				// Field-level detail is deliberately collapsed to one code.
				log.Printf("body validation failed on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				RenderError(c, types.Validation("ERR_BODY_VALIDATION"))
				return
			}
			c.Set(contextBodyKey, body)
		}

		data, err := info.Handle(c)
		if err != nil {
			RenderError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// RenderError serializes an error as {statusCode, message}. Errors that are
// not AppError values are coerced to a generic 500 so internals never leak.
func RenderError(c *gin.Context, err error) {
	appErr, ok := types.AsAppError(err)
	if !ok {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		appErr = types.Internal("INTERNAL_SERVER_ERROR")
	}
	c.JSON(appErr.StatusCode, gin.H{
		"statusCode": appErr.StatusCode,
		"message":    appErr.Key,
	})
}

// QueryID returns the required id query parameter.
func QueryID(c *gin.Context) (string, error) {
	id := c.Query("id")
	if id == "" {
		return "", types.Validation("ERR_BODY_VALIDATION")
	}
	return id, nil
}

// CurrentUser returns the authenticated user set by the dispatcher.
func CurrentUser(c *gin.Context) *models.User {
	v, _ := c.Get(middleware.ContextUserKey)
	user, _ := v.(*models.User)
	return user
}
