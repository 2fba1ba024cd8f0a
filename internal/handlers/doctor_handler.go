package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 5 << 20

type doctorForm struct {
	Name  string                `form:"name" binding:"required"`
	Email string                `form:"email" binding:"required,email"`
	Image *multipart.FileHeader `form:"image" binding:"required"`
}

func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor accepts a multipart form with name, email and an image file.
// The file bytes are stored unchanged.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var form doctorForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if form.Image.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("image exceeds %d bytes", maxImageBytes),
		})
		return
	}

	image, err := readUpload(form.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable image"})
		return
	}

	res, err := h.Doctors.Create(c.Request.Context(), form.Name, form.Email, image)
	if err != nil {
		h.fail(c, "create doctor", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImageBytes+1))
}
