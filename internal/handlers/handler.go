package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type Handler struct {
	DB           Pinger
	Appointments *services.AppointmentService
	Doctors      *services.DoctorService
	Users        *services.UserService
	Payments     *services.PaymentService
	Log          *slog.Logger
}

func NewHandler(
	db Pinger,
	appointments *services.AppointmentService,
	doctors *services.DoctorService,
	users *services.UserService,
	payments *services.PaymentService,
	log *slog.Logger,
) *Handler {
	useJSONFieldNames()
	return &Handler{
		DB:           db,
		Appointments: appointments,
		Doctors:      doctors,
		Users:        users,
		Payments:     payments,
		Log:          log,
	}
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func (h *Handler) logWithRequest(c *gin.Context) *slog.Logger {
	if id := middleware.RequestIDFrom(c); id != "" {
		return h.Log.With(slog.String("request_id", id))
	}
	return h.Log
}

// badRequest answers 400, listing failed fields when err comes from the
// validator. Bodies cut off by BodyLimit answer 413.
func badRequest(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error", Details: details})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

// fail maps a service error onto a status code. Unexpected errors are
// logged and hidden from the caller.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: op + " not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, services.ErrPaymentsDisabled):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "payments are not configured"})
	case errors.Is(err, services.ErrUpstream):
		h.logWithRequest(c).Error(op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "payment processor error"})
	default:
		h.logWithRequest(c).Error(op, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "database error"})
	}
}

var jsonNamesOnce sync.Once

// useJSONFieldNames makes validation details report json/form names instead
// of Go field names.
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}
