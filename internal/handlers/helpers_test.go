package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"fitpath_backend/internal/auth"
	"fitpath_backend/internal/config"
	"fitpath_backend/internal/handlers"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/internal/validator"
	"fitpath_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newBase() *handlers.BaseHandler {
	return handlers.NewBaseHandler(validator.New())
}

// newTestRouter wires a handler's routes behind a db-key middleware. The stub
// services never touch the db, so a nil *gorm.DB satisfies GetDB.
func newTestRouter(register func(api *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), (*gorm.DB)(nil))
		c.Next()
	})
	register(r.Group("/"))
	return r
}

func issueToken(t *testing.T, userID, email, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// errorBody mirrors the wire shape produced by apperrors.
type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Domain  string            `json:"domain"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	decodeBody(t, w, &body)
	return body
}

// --- service stubs ---

type stubUserService struct {
	createOrGet       func(req *dto.CreateUserRequest) (*dto.UserResponse, bool, error)
	getRoleByEmail    func(email string) (*dto.RoleResponse, error)
	listTrainers      func() ([]*dto.UserResponse, error)
	getTrainerByID    func(id string) (*dto.UserResponse, error)
	getTrainerByEmail func(email string) (*dto.UserResponse, error)
	listAll           func() ([]*dto.UserResponse, error)
	demoteTrainer     func(email string) error
}

func (s *stubUserService) CreateOrGet(_ *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, bool, error) {
	return s.createOrGet(req)
}

func (s *stubUserService) ListAll(_ *gorm.DB) ([]*dto.UserResponse, error) {
	return s.listAll()
}

func (s *stubUserService) GetRoleByEmail(_ *gorm.DB, email string) (*dto.RoleResponse, error) {
	return s.getRoleByEmail(email)
}

func (s *stubUserService) ListTrainers(_ *gorm.DB) ([]*dto.UserResponse, error) {
	return s.listTrainers()
}

func (s *stubUserService) GetTrainerByID(_ *gorm.DB, id string) (*dto.UserResponse, error) {
	return s.getTrainerByID(id)
}

func (s *stubUserService) GetTrainerByEmail(_ *gorm.DB, email string) (*dto.UserResponse, error) {
	return s.getTrainerByEmail(email)
}

func (s *stubUserService) DemoteTrainer(_ *gorm.DB, email string) error {
	return s.demoteTrainer(email)
}

type stubSlotService struct {
	create             func(trainerID string, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	getByID            func(id string) (*dto.SlotResponse, error)
	listAvailable      func() ([]*dto.SlotResponse, error)
	listByTrainerEmail func(email string) ([]*dto.SlotResponse, error)
	book               func(req *dto.BookSlotRequest) (*dto.BookingResponse, error)
	incrementBookings  func(slotID string) error
	delete             func(slotID string) error
}

func (s *stubSlotService) Create(_ *gorm.DB, trainerID string, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	return s.create(trainerID, req)
}

func (s *stubSlotService) GetByID(_ *gorm.DB, id string) (*dto.SlotResponse, error) {
	return s.getByID(id)
}

func (s *stubSlotService) ListAvailable(_ *gorm.DB) ([]*dto.SlotResponse, error) {
	return s.listAvailable()
}

func (s *stubSlotService) ListByTrainerEmail(_ *gorm.DB, email string) ([]*dto.SlotResponse, error) {
	return s.listByTrainerEmail(email)
}

func (s *stubSlotService) Book(_ *gorm.DB, req *dto.BookSlotRequest) (*dto.BookingResponse, error) {
	return s.book(req)
}

func (s *stubSlotService) IncrementBookings(_ *gorm.DB, slotID string) error {
	return s.incrementBookings(slotID)
}

func (s *stubSlotService) Delete(_ *gorm.DB, slotID string) error {
	return s.delete(slotID)
}

type stubPaymentService struct {
	createIntent   func(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	record         func(req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	bookedTrainers func(email string) ([]*dto.PaymentResponse, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	return s.createIntent(ctx, req)
}

func (s *stubPaymentService) Record(_ *gorm.DB, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	return s.record(req)
}

func (s *stubPaymentService) BookedTrainers(_ *gorm.DB, email string) ([]*dto.PaymentResponse, error) {
	return s.bookedTrainers(email)
}
