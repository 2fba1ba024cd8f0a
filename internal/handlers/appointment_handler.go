package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
)

type listAppointmentsQuery struct {
	Email string `form:"email" binding:"required"`
	Date  string `form:"date" binding:"required"`
}

// appointmentRequest holds the fields every booking must carry; the rest of
// the body is stored as sent.
type appointmentRequest struct {
	Email string `json:"email" binding:"required,email"`
	Date  string `json:"date" binding:"required"`
}

// GetAppointments lists a patient's bookings for one day. The route runs the
// token verifier but does not require a verified caller.
func (h *Handler) GetAppointments(c *gin.Context) {
	var q listAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	if requester, ok := middleware.DecodedEmail(c); ok {
		h.logWithRequest(c).Debug("list appointments",
			slog.String("requester", requester),
			slog.Bool("own", requester == q.Email),
		)
	}

	appointments, err := h.Appointments.ListByEmailAndDate(c.Request.Context(), q.Email, q.Date)
	if err != nil {
		h.fail(c, "list appointments", err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	apt, err := h.Appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "appointment", err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		badRequest(c, err)
		return
	}
	var payload map[string]interface{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.Appointments.Create(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, "create appointment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AttachPayment stores the charge details sent by the client after a
// successful card payment.
func (h *Handler) AttachPayment(c *gin.Context) {
	var payment map[string]interface{}
	if err := c.ShouldBindJSON(&payment); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.Appointments.AttachPayment(c.Request.Context(), c.Param("id"), payment)
	if err != nil {
		h.fail(c, "attach payment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
