package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/uploads"
)

func (h *Handler) getAll(c *gin.Context) {
	items, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), in); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResp{Message: "Project added."})
}

func (h *Handler) update(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	_, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.UpdateInput{
		CreateInput:       in,
		RawExistingImages: c.PostFormArray("existingImages"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResp{Message: "Project updated successfully."})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResp{Message: "Project deleted successfully."})
}

// bindInput reads the multipart (or urlencoded) project form. Files are taken
// from the "images" field.
func (h *Handler) bindInput(c *gin.Context) (service.CreateInput, bool) {
	if h.bodyLimit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.bodyLimit)
	}

	var files []*multipart.FileHeader
	form, err := c.MultipartForm()
	switch {
	case err == nil:
		files = form.File["images"]
	case errors.Is(err, http.ErrNotMultipart):
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpapi.Error(c, http.StatusBadRequest, "file_too_large", "Request body is too large.")
			return service.CreateInput{}, false
		}
		httpapi.Error(c, http.StatusBadRequest, "invalid_body", "invalid body")
		return service.CreateInput{}, false
	}

	return service.CreateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		DemoURL:     c.PostForm("demoUrl"),
		GithubURL:   c.PostForm("githubUrl"),
		RawTags:     c.PostFormArray("tags"),
		Files:       files,
	}, true
}

// fail maps service errors onto status codes. Client-side upload problems
// are 400; a storage backend failure is 500.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		httpapi.Error(c, http.StatusBadRequest, "invalid_body", "Title and description are required.")
	case errors.Is(err, domain.ErrDuplicateTitle):
		httpapi.Error(c, http.StatusBadRequest, "duplicate_title", "Project already exist.")
	case errors.Is(err, domain.ErrNotFound):
		httpapi.Error(c, http.StatusNotFound, "not_found", "Project not found.")
	case errors.Is(err, uploads.ErrTooManyFiles):
		httpapi.Error(c, http.StatusBadRequest, "too_many_files", "Too many images.")
	case errors.Is(err, uploads.ErrFileTooLarge):
		httpapi.Error(c, http.StatusBadRequest, "file_too_large", "Image is too large.")
	case errors.Is(err, uploads.ErrUnsupportedFormat):
		httpapi.Error(c, http.StatusBadRequest, "unsupported_format", "Only jpg, jpeg, png and webp images are allowed.")
	case errors.Is(err, uploads.ErrUploadFailed):
		h.log.Error(c.Request.Context(), "image upload failed", "error", err)
		httpapi.Error(c, http.StatusInternalServerError, "upload_failed", "Image upload failed.")
	default:
		h.log.Error(c.Request.Context(), "project request failed", "path", c.FullPath(), "error", err)
		httpapi.Error(c, http.StatusInternalServerError, "unexpected_error", "Something went wrong.")
	}
}
