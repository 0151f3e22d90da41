package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/performance"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	reviewService performance.ReviewService
}

func NewPerformanceHandler(reviewService performance.ReviewService) PerformanceHandler {
	return &PerformanceHandlerImpl{reviewService: reviewService}
}

func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateReview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	review, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", review)
}

func (h *PerformanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.reviewService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, review)
}

func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := performance.ReviewFilter{
		EmployeeID:   queryString(r, "employee_id"),
		DepartmentID: queryString(r, "department_id"),
		Rating:       queryInt(r, "rating"),
		DateFrom:     queryDate(r, "date_from"),
		DateTo:       queryDate(r, "date_to"),
		Page:         page,
		Limit:        limit,
	}

	reviews, total, err := h.reviewService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, reviews, response.NewMeta(page, limit, total))
}

func (h *PerformanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	var req performance.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateReview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	review, err := h.reviewService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", review)
}

func (h *PerformanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.reviewService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}
