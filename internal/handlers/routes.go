package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
)

// MaxBodyBytes caps every request body: the largest doctor image plus room
// for the other form fields.
const MaxBodyBytes = maxImageBytes + 1<<20

// RegisterRoutes binds every endpoint. verifyToken is applied to the two
// routes that read the caller's identity.
func RegisterRoutes(r gin.IRouter, h *Handler, verifyToken gin.HandlerFunc) {
	r.Use(middleware.BodyLimit(MaxBodyBytes))

	r.GET("/", h.Home)
	r.GET("/healthz", h.Health)

	r.GET("/appointments", verifyToken, h.GetAppointments)
	r.GET("/appointments/:id", h.GetAppointment)
	r.POST("/appointments", h.CreateAppointment)
	r.PUT("/appointments/:id", h.AttachPayment)

	r.GET("/doctors", h.GetDoctors)
	r.POST("/doctors", h.CreateDoctor)

	r.GET("/users/:email", h.GetAdminFlag)
	r.POST("/users", h.CreateUser)
	r.PUT("/users", h.UpsertUser)
	r.PUT("/users/admin", verifyToken, h.MakeAdmin)

	r.POST("/create-payment-intent", h.CreatePaymentIntent)
}
