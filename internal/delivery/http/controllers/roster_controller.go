package controllers

import (
	"log/slog"
	"net/http"

	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/domain"
)

type RosterController struct {
	Logger  *slog.Logger
	Service domain.RosterService
}

func NewRosterController(logger *slog.Logger, svc domain.RosterService) *RosterController {
	return &RosterController{Logger: logger, Service: svc}
}

// RegistrationsResponse is the success response for GET /api/admin/registrations.
type RegistrationsResponse struct {
	Registrations []*domain.RosterEntry  `json:"registrations"`
	Pagination    helpers.PaginationMeta `json:"pagination"`
	EventList     []domain.CatalogEvent  `json:"eventList"`
}

// Registrations godoc
// @Summary List registrations
// @Description Returns the filtered, paginated registration roster: one entry per registrant with nested registrations and payment.
// @Tags roster
// @Produce json
// @Param event query string false "Filter by event id"
// @Param abstractStatus query string false "Filter by abstract review status (abstract-track events only)"
// @Param paymentStatus query string false "Filter by payment status"
// @Param checkedIn query string false "true or false; false also matches never-checked-in"
// @Param attendanceStatus query string false "Filter by attendance status"
// @Param page query int false "Page (min 1)"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} controllers.RegistrationsResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/registrations [get]
func (c *RosterController) Registrations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.RosterFilters{
		Event:            q.Get("event"),
		AbstractStatus:   q.Get("abstractStatus"),
		PaymentStatus:    q.Get("paymentStatus"),
		CheckedIn:        q.Get("checkedIn"),
		AttendanceStatus: q.Get("attendanceStatus"),
	}
	params := helpers.ParsePagination(r)

	entries, total, err := c.Service.ListRegistrations(r.Context(), filters, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, RegistrationsResponse{
		Registrations: entries,
		Pagination:    helpers.NewPaginationMeta(params.Page, params.Limit, total),
		EventList:     domain.EventCatalog,
	})
}

// SearchResultsResponse is the success response for GET /api/admin/search?q=.
type SearchResultsResponse struct {
	Results []*domain.User `json:"results"`
}

// Search godoc
// @Summary Search registrants
// @Description With q, matches name/email/unique code and returns a result list. With code, looks up the exact unique code and returns the registrant with registrations and payment.
// @Tags roster
// @Produce json
// @Param q query string false "Free-text query"
// @Param code query string false "Exact unique code"
// @Success 200 {object} controllers.SearchResultsResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/search [get]
func (c *RosterController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if code := q.Get("code"); code != "" {
		result, err := c.Service.LookupByCode(r.Context(), code)
		if err != nil {
			writeServiceError(w, r, c.Logger, err)
			return
		}
		helpers.WriteJSON(w, http.StatusOK, result)
		return
	}

	query := q.Get("q")
	if query == "" {
		helpers.WriteError(w, http.StatusBadRequest, "q or code is required")
		return
	}
	users, err := c.Service.SearchByQuery(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SearchResultsResponse{Results: users})
}

// Stats godoc
// @Summary Aggregate dashboard counters
// @Tags roster
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/admin/stats [get]
func (c *RosterController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}
