package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tuiter/internal/config"
	"tuiter/internal/models"
	"tuiter/internal/repository"
	"tuiter/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a Fiber app with the full route table wired to an
// in-memory SQLite database. Redis is left nil so cache and rate limiting
// become no-ops.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tuit{},
		&models.Like{},
		&models.Follow{},
		&models.Bookmark{},
		&models.Message{},
	))

	userRepo := repository.NewUserRepository(db)
	tuitRepo := repository.NewTuitRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	s := &Server{
		config:       &config.Config{Env: "test", Port: "4000", DBName: "tuiter"},
		db:           db,
		userRepo:     userRepo,
		tuitRepo:     tuitRepo,
		likeRepo:     likeRepo,
		followRepo:   followRepo,
		bookmarkRepo: bookmarkRepo,
		messageRepo:  messageRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.tuitService = service.NewTuitService(tuitRepo, userRepo)
	s.likeService = service.NewLikeService(db, tuitRepo, likeRepo, userRepo)
	s.followService = service.NewFollowService(followRepo, userRepo)
	s.bookmarkService = service.NewBookmarkService(bookmarkRepo, tuitRepo, userRepo)
	s.messageService = service.NewMessageService(messageRepo, userRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, db
}

func seedServerUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: "hashed-password",
		Email:    username + "@tuiter.test",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedServerTuit(t *testing.T, db *gorm.DB, author *models.User, text string) *models.Tuit {
	t.Helper()
	tuit := &models.Tuit{Tuit: text, PostedByID: author.ID}
	require.NoError(t, db.Create(tuit).Error)
	return tuit
}

// doJSON performs a request with an optional JSON body and decodes the
// response body into out (when out is non-nil).
func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
