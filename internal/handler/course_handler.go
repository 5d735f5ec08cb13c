package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursebay/coursebay-backend/internal/middleware"
	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/response"
	"github.com/coursebay/coursebay-backend/internal/service"
	"github.com/coursebay/coursebay-backend/internal/validator"
)

// CourseHandler handles admin course management endpoints.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// Create godoc
// POST /admin/course
func (h *CourseHandler) Create(c *gin.Context) {
	adminID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), adminID, req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, "Course added successfully", gin.H{"course": course})
}

// Update godoc
// PUT /admin/course/:id
// Replaces all four editable fields. The existence check runs before the
// ownership check, so a non-owner gets 404 for an absent course and 403
// for someone else's.
func (h *CourseHandler) Update(c *gin.Context) {
	adminID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidID)
		return
	}

	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), adminID, courseID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseOwner):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseOwner)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, "Course updated successfully", gin.H{"course": course})
}

// Delete godoc
// DELETE /admin/course/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	adminID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidID)
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), adminID, courseID); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotCourseOwner):
			response.Fail(c, http.StatusForbidden, response.ErrNotCourseOwner)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, "Course deleted successfully", nil)
}
