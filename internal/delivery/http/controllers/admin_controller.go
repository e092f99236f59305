package controllers

import (
	"log/slog"
	"net/http"

	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/domain"
)

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{Logger: logger, Service: svc}
}

// CheckInRequest is the request body for POST /api/admin/checkin.
type CheckInRequest struct {
	Code   string `json:"code"`
	Action string `json:"action"`
}

// Validate implements helpers.Validator.
func (r *CheckInRequest) Validate() []string {
	var errs []string
	if r.Code == "" {
		errs = append(errs, "code is required")
	}
	if r.Action != "checkin" {
		errs = append(errs, `action must be "checkin"`)
	}
	return errs
}

// CheckIn godoc
// @Summary Check in a registrant at the venue
// @Description Marks the registrant with the given unique code as arrived. A second check-in for the same code fails with 409.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.CheckInRequest true "Unique code"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/checkin [post]
func (c *AdminController) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.Service.CheckIn(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// EventStatusRequest is the request body for POST /api/admin/event-status.
type EventStatusRequest struct {
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
	Status  string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *EventStatusRequest) Validate() []string {
	var errs []string
	if r.UserID == "" {
		errs = append(errs, "userId is required")
	}
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if r.Status == "" {
		errs = append(errs, "status is required")
	} else if !domain.ValidAttendanceUpdate(r.Status) {
		errs = append(errs, "status must be PENDING, PRESENT, or ABSENT")
	}
	return errs
}

// EventStatus godoc
// @Summary Mark event attendance
// @Description Updates the attendance status of one registration. The user must have checked in at the venue first.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.EventStatusRequest true "Attendance update"
// @Success 200 {object} domain.EventRegistration
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/event-status [post]
func (c *AdminController) EventStatus(w http.ResponseWriter, r *http.Request) {
	var req EventStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.SetAttendance(r.Context(), req.UserID, req.EventID, req.Status)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, reg)
}

// PaymentStatusRequest is the request body for POST /api/admin/payment-status.
type PaymentStatusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *PaymentStatusRequest) Validate() []string {
	var errs []string
	if r.UserID == "" {
		errs = append(errs, "userId is required")
	}
	if r.Status == "" {
		errs = append(errs, "status is required")
	} else if !domain.ValidPaymentStatus(r.Status) {
		errs = append(errs, "status must be PENDING, VERIFIED, or REJECTED")
	}
	return errs
}

// PaymentStatus godoc
// @Summary Update a registrant's payment status
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.PaymentStatusRequest true "Payment status update"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/payment-status [post]
func (c *AdminController) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req PaymentStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	payment, err := c.Service.SetPaymentStatus(r.Context(), req.UserID, req.Status)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, payment)
}
