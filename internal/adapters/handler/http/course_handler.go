package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/courseboard/api/internal/core/domain"
	"github.com/courseboard/api/internal/core/ports"
)

type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{
		service: service,
	}
}

type createCourseRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Modules     []string `json:"modules"`
}

type updateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Modules     []string `json:"modules"`
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.Create(r.Context(), userID, ports.CreateCourseInput{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Modules:     req.Modules,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCourseValidation) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Error creating course")
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error fetching courses")
		return
	}
	if courses == nil {
		courses = []*domain.Course{}
	}

	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.Update(r.Context(), id, ports.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Modules:     req.Modules,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) || errors.Is(err, domain.ErrInvalidCourseID) {
			writeMessage(w, http.StatusNotFound, "Course not found")
			return
		}
		if errors.Is(err, domain.ErrCourseValidation) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Error updating course")
		return
	}

	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) || errors.Is(err, domain.ErrInvalidCourseID) {
			writeMessage(w, http.StatusNotFound, "Course not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Error deleting course")
		return
	}

	writeMessage(w, http.StatusOK, "Course deleted")
}
