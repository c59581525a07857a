package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/job-portal-api/internal/api/metrics"
	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
	"github.com/talenthub/job-portal-api/internal/infrastructure/storage"
)

// FileStore is the interface the handlers use to persist uploads.
type FileStore interface {
	Save(file *multipart.FileHeader, kind string) (string, error)
}

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
	files   FileStore
}

func NewApplicationHandler(service ports.ApplicationService, files FileStore) *ApplicationHandler {
	return &ApplicationHandler{service: service, files: files}
}

// Apply handles POST /applications/apply/:jobId. The resume is written to
// disk before the job lookup, so an apply against an unknown job can leave
// an orphan file behind; the record itself is never created.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        jobId   path      string  true  "Job id"
// @Param        resume  formData  file    true  "Resume file"
// @Success      201     {object}  domain.Application
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /applications/apply/{jobId} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "resume file is required")
	}

	resumePath, err := h.files.Save(file, storage.ResumeDir)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store resume")
	}

	app, err := h.service.Apply(c.Request().Context(), userID, c.Param("jobId"), resumePath)
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /applications/my-applications.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   myApplicationResponse
// @Failure      401  {object}  map[string]string
// @Router       /applications/my-applications [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]myApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toMyApplicationResponse(app))
	}
	return c.JSON(http.StatusOK, out)
}

// ListForJob handles GET /applications/job/:jobId/applications.
//
// @Summary      List applications for an owned job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {array}   jobApplicationResponse
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /applications/job/{jobId}/applications [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListForJob(c.Request().Context(), userID, c.Param("jobId"))
	if err != nil {
		return err
	}

	out := make([]jobApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toJobApplicationResponse(app))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus handles PUT /applications/status/:applicationId.
//
// @Summary      Update an application's status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId  path      string               true  "Application id"
// @Param        body           body      updateStatusRequest  true  "New status"
// @Success      200            {object}  domain.Application
// @Failure      400            {object}  map[string]string
// @Failure      403            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /applications/status/{applicationId} [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), userID, c.Param("applicationId"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.ApplicationStatusUpdatesTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

// Resume handles GET /applications/resume/:applicationId. It returns the
// stored relative path; the static file route serves the bytes.
//
// @Summary      Fetch an applicant's resume path
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        applicationId  path      string  true  "Application id"
// @Success      200            {object}  resumeResponse
// @Failure      403            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /applications/resume/{applicationId} [get]
func (h *ApplicationHandler) Resume(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	path, err := h.service.ResumePath(c.Request().Context(), userID, c.Param("applicationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resumeResponse{Resume: path})
}
