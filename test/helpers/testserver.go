package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fitpath_backend/internal/app"
	"fitpath_backend/internal/auth"
	"fitpath_backend/internal/config"
	"fitpath_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps a real HTTP server backed by the test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the full application against TEST_DATABASE_URL. Tests
// that need it are skipped when the variable is not set, so the unit suite
// can run without Postgres.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDSN := os.Getenv("TEST_DATABASE_URL")
	if testDSN == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	os.Setenv("DATABASE_URL", testDSN)
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.TrainerApplication{},
		&models.RejectedApplication{},
		&models.Slot{},
		&models.Booking{},
		&models.Class{},
		&models.Payment{},
		&models.Review{},
		&models.ForumPost{},
		&models.NewsletterSubscriber{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}

// CreateUser inserts a user directly and returns it with a valid token.
// Unique emails keep parallel tests from colliding; pass a distinct suffix.
func (ts *TestServer) CreateUser(t *testing.T, name, email, password string, role models.UserRole) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := ts.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("failed to issue token for %s: %v", email, err)
	}

	return user, token
}

// UniqueEmail builds an address that will not collide across tests or runs.
func UniqueEmail(t *testing.T, prefix string) string {
	t.Helper()
	return fmt.Sprintf("%s-%d@test.local", prefix, time.Now().UnixNano())
}
