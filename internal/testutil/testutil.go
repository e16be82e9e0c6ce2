package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/auth"
	"github.com/mina/shiftbase/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "Testpass123"

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Employee{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser creates a user with the given role and a known password
func CreateTestUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Base: models.Base{
			ID: uuid.New(),
		},
		Email:        "test-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		Status:       models.UserStatusActive,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTestStore creates a store owned by the given user
func CreateTestStore(t *testing.T, db *gorm.DB, owner *models.User) *models.Store {
	t.Helper()

	store := &models.Store{
		Base: models.Base{
			ID: uuid.New(),
		},
		OwnerID:   owner.ID,
		Name:      "Test Store " + uuid.New().String()[:8],
		Type:      models.StoreTypeCafe,
		GPSRadius: models.DefaultGPSRadius,
		Status:    models.StoreStatusActive,
	}

	if err := db.Create(store).Error; err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	return store
}

// CreateTestEmployee puts a user on a store's roster with the given status
func CreateTestEmployee(t *testing.T, db *gorm.DB, user *models.User, store *models.Store, status models.EmployeeStatus) *models.Employee {
	t.Helper()

	emp := &models.Employee{
		Base: models.Base{
			ID: uuid.New(),
		},
		UserID:     user.ID,
		StoreID:    store.ID,
		Role:       "staff",
		HourlyWage: 11000,
		Status:     status,
		HiredAt:    time.Now().AddDate(0, -1, 0),
	}
	if status == models.EmployeeStatusQuit {
		quit := time.Now().AddDate(0, 0, -1)
		emp.QuitAt = &quit
	}

	if err := db.Create(emp).Error; err != nil {
		t.Fatalf("failed to create test employee: %v", err)
	}

	return emp
}

// CreateTestJWTService creates a token service with distinct test secrets
func CreateTestJWTService() *auth.JWTService {
	return auth.NewJWTService(
		"test-access-secret",
		"test-refresh-secret",
		24*time.Hour,
		30*24*time.Hour,
	)
}

// GenerateTestToken generates a valid access token for the given user
func GenerateTestToken(t *testing.T, jwtService *auth.JWTService, user *models.User, storeID *uuid.UUID) string {
	t.Helper()

	token, err := jwtService.GenerateAccessToken(user.ID, string(user.Role), storeID)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return token
}

// AuthenticatedRequest creates an HTTP request with authentication
func AuthenticatedRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// UnauthenticatedRequest creates an HTTP request without authentication
func UnauthenticatedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	return AuthenticatedRequest(t, method, path, body, "")
}

// ParseJSONResponse parses the response body into the given struct
func ParseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response body: %v. Body: %s", err, rr.Body.String())
	}
}

// TestSetup holds the common test dependencies
type TestSetup struct {
	DB         *gorm.DB
	JWTService *auth.JWTService
	Owner      *models.User
	Store      *models.Store
	Token      string
}

// NewTestContext creates a complete test setup with DB, owner, store, and token
func NewTestContext(t *testing.T) *TestSetup {
	t.Helper()

	db := SetupTestDB(t)
	jwtService := CreateTestJWTService()
	owner := CreateTestUser(t, db, models.RoleOwner)
	store := CreateTestStore(t, db, owner)
	token := GenerateTestToken(t, jwtService, owner, &store.ID)

	return &TestSetup{
		DB:         db,
		JWTService: jwtService,
		Owner:      owner,
		Store:      store,
		Token:      token,
	}
}

// Cleanup closes the test database
func (ts *TestSetup) Cleanup() {
	if ts.DB != nil {
		sqlDB, err := ts.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
