package controllers

import (
	"log/slog"
	"net/http"

	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/domain"
)

type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{Logger: logger, Service: svc}
}

// AbstractReviewRequest is the request body for POST /api/admin/abstract-review.
type AbstractReviewRequest struct {
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
	Action  string `json:"action"`
}

// Validate implements helpers.Validator.
func (r *AbstractReviewRequest) Validate() []string {
	var errs []string
	if r.UserID == "" {
		errs = append(errs, "userId is required")
	}
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if r.Action != string(domain.ReviewApproved) && r.Action != string(domain.ReviewRejected) {
		errs = append(errs, "action must be APPROVED or REJECTED")
	}
	return errs
}

// AbstractReviewResponse is the success response for POST /api/admin/abstract-review.
type AbstractReviewResponse struct {
	Success         bool   `json:"success"`
	Action          string `json:"action"`
	EventID         string `json:"eventId"`
	FallbackEventID string `json:"fallbackEventId,omitempty"`
}

// AbstractReview godoc
// @Summary Review an abstract-track registration
// @Description Approves or rejects an abstract submission. Rejection atomically enrolls the registrant in the configured fallback event and sends a best-effort notification email after commit.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.AbstractReviewRequest true "Review decision"
// @Success 200 {object} controllers.AbstractReviewResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/abstract-review [post]
func (c *ReviewController) AbstractReview(w http.ResponseWriter, r *http.Request) {
	var req AbstractReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Service.Review(r.Context(), req.UserID, req.EventID, domain.ReviewAction(req.Action))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AbstractReviewResponse{
		Success:         true,
		Action:          string(result.Action),
		EventID:         result.EventID,
		FallbackEventID: result.FallbackEventID,
	})
}
