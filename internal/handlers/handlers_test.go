package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

const testSecret = "handlers-test-secret"

type testEnv struct {
	router       *gin.Engine
	handler      *Handler
	db           *fakePinger
	appointments *memAppointments
	doctors      *memDoctors
	users        *memUsers
	intents      *fakeIntents
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		db:           &fakePinger{},
		appointments: &memAppointments{},
		doctors:      &memDoctors{},
		users:        &memUsers{},
		intents:      &fakeIntents{secret: "pi_123_secret_456"},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	env.handler = NewHandler(
		env.db,
		services.NewAppointmentService(env.appointments),
		services.NewDoctorService(env.doctors),
		services.NewUserService(env.users),
		services.NewPaymentService(env.intents),
		log,
	)

	r := gin.New()
	r.Use(middleware.RequestID())
	RegisterRoutes(r, env.handler, middleware.VerifyToken(auth.NewJWTVerifier(testSecret), log))
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, email string) []string {
	t.Helper()
	token, err := utils.GenerateJWT([]byte(testSecret), email, time.Hour)
	require.NoError(t, err)
	return []string{"Authorization", "Bearer " + token}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
