package routes

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"syana-server/config"
	"syana-server/database"
	"syana-server/models"
	"syana-server/services"
)

const testJWTSecret = "routes-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// nullPush accepts every delivery.
type nullPush struct {
	mu    sync.Mutex
	count int
}

func (p *nullPush) Send(token, title, body string, data map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	return nil
}

func createAuthedUser(t *testing.T, db *gorm.DB) (*models.User, string) {
	t.Helper()
	user := models.User{
		Name:        "Route Tester",
		Email:       fmt.Sprintf("route%d@example.com", time.Now().UnixNano()),
		PhoneNumber: fmt.Sprintf("+97150%07d", time.Now().UnixNano()%10000000),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	auth := services.NewAuthService(db, nil,
		config.JWTConfig{Secret: testJWTSecret, ExpiryHours: 1},
		config.PhoneConfig{DefaultCountryCode: "+971"},
	)
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return &user, token
}
