package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobvault/vacancy-service/internal/metrics"
	"github.com/jobvault/vacancy-service/internal/service"
)

// JobHandler handles vacancy HTTP requests.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new JobHandler instance.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create godoc
// @Summary Create a vacancy
// @Description Create a vacancy; the title must not exist yet
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.JobInput true "Vacancy fields"
// @Success 201 {object} models.Job
// @Failure 400 {object} ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var input service.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), input)
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// Get godoc
// @Summary Get a vacancy
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Vacancy id"
// @Success 200 {object} models.Job
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// List godoc
// @Summary List vacancies
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Update godoc
// @Summary Update a vacancy
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Vacancy id"
// @Param request body service.JobInput true "Vacancy fields"
// @Success 200 {object} models.Job
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a vacancy
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Vacancy id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vacancy deleted"})
}

// Import godoc
// @Summary Bulk-import vacancies
// @Description Fetch vacancies from the external search API and store new titles
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param text query string true "Search text"
// @Param limit query int false "Max records to fetch" default(20)
// @Success 200 {object} service.ImportResult
// @Failure 502 {object} ErrorResponse
// @Router /jobs/import [post]
func (h *JobHandler) Import(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		respondError(c, http.StatusBadRequest, "query parameter text is required")
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	result, err := h.jobService.Import(c.Request.Context(), text, limit)
	if err != nil {
		metrics.ImportRuns.WithLabelValues("error").Inc()
		respondAppError(c, err)
		return
	}

	metrics.ImportRuns.WithLabelValues("ok").Inc()
	metrics.ImportedJobs.Add(float64(result.Added))
	c.JSON(http.StatusOK, result)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}
