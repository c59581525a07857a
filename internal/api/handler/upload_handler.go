package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/job-portal-api/internal/core/ports"
	"github.com/talenthub/job-portal-api/internal/infrastructure/storage"
)

// UploadHandler stores profile photos and resumes and records the stored
// path on the user document.
type UploadHandler struct {
	users ports.UserRepository
	files FileStore
}

func NewUploadHandler(users ports.UserRepository, files FileStore) *UploadHandler {
	return &UploadHandler{users: users, files: files}
}

type uploadResponse struct {
	Path string `json:"path"`
}

// ProfilePhoto handles POST /upload/profile-photo (form field "photo").
//
// @Summary      Upload a profile photo
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        photo  formData  file  true  "Profile photo"
// @Success      200    {object}  uploadResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /upload/profile-photo [post]
func (h *UploadHandler) ProfilePhoto(c echo.Context) error {
	return h.store(c, "photo", storage.ProfileDir, h.users.SetProfilePhoto)
}

// ResumeFile handles POST /upload/resume (form field "resume").
//
// @Summary      Upload a resume
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  uploadResponse
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /upload/resume [post]
func (h *UploadHandler) ResumeFile(c echo.Context) error {
	return h.store(c, "resume", storage.ResumeDir, h.users.SetResume)
}

func (h *UploadHandler) store(c echo.Context, field, kind string, persist func(ctx context.Context, id, path string) error) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile(field)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, field+" file is required")
	}

	path, err := h.files.Save(file, kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store file")
	}

	if err := persist(c.Request().Context(), userID, path); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(http.StatusOK, uploadResponse{Path: path})
}
