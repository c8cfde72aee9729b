package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// Status is accepted on update only; create always starts as draft.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	CategoryID  int64     `json:"category_id"`
	LocationID  int64     `json:"location_id"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	if e.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if e.EndDate.IsZero() {
		errs = append(errs, "end_date is required")
	}
	if e.CategoryID < 1 {
		errs = append(errs, "category_id is required")
	}
	if e.LocationID < 1 {
		errs = append(errs, "location_id is required")
	}
	return errs
}

func (e EventRequest) toDomain(id int64) *domain.Event {
	return &domain.Event{
		ID:          id,
		Title:       strings.TrimSpace(e.Title),
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      domain.EventStatus(e.Status),
		CategoryID:  e.CategoryID,
		LocationID:  e.LocationID,
	}
}

// EventDetailSuccessResponse is the success response envelope for endpoints returning a hydrated event.
type EventDetailSuccessResponse struct {
	Data  *domain.EventDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListEventsResponse is the data payload for GET /events (200).
type ListEventsResponse struct {
	Items      []*domain.Event        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event in draft status. end_date must not be before start_date; the category and location must exist.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event data (status is ignored on create)"
// @Success 201 {object} controllers.EventDetailSuccessResponse "data contains the created event with category and location"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (category or location)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	detail, err := c.Service.CreateEvent(r.Context(), req.toDomain(0))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, detail)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event hydrated with its category, location, and registrations.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventDetailSuccessResponse "data contains the event detail"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	detail, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// parseEventFilter reads the optional filter query parameters for GET /events.
// Dates accept RFC 3339 or plain YYYY-MM-DD. An event matches a date range
// when it lies fully inside it.
func parseEventFilter(r *http.Request) (domain.EventFilter, []string) {
	var filter domain.EventFilter
	var errs []string
	q := r.URL.Query()

	if s := q.Get("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			errs = append(errs, "from must be an RFC 3339 timestamp or YYYY-MM-DD date")
		} else {
			filter.From = &t
		}
	}
	if s := q.Get("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			errs = append(errs, "to must be an RFC 3339 timestamp or YYYY-MM-DD date")
		} else {
			filter.To = &t
		}
	}
	if s := q.Get("location_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id < 1 {
			errs = append(errs, "location_id must be a positive integer")
		} else {
			filter.LocationID = &id
		}
	}
	if s := q.Get("category_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id < 1 {
			errs = append(errs, "category_id must be a positive integer")
		} else {
			filter.CategoryID = &id
		}
	}
	if s := q.Get("status"); s != "" {
		status := domain.EventStatus(s)
		if !status.Valid() {
			errs = append(errs, "status must be one of draft, published, cancelled, completed")
		} else {
			filter.Status = &status
		}
	}
	return filter, errs
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ListEvents godoc
// @Summary List events
// @Description Returns a paginated list of events. Optional filters: from/to (event must lie fully inside the range), location_id, category_id, status.
// @Tags events
// @Produce json
// @Param from query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Param location_id query int false "Filter by location"
// @Param category_id query int false "Filter by category"
// @Param status query string false "Filter by status (draft, published, cancelled, completed)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, errs := parseEventFilter(r)
	if len(errs) > 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(errs, "; "))
		return
	}
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), filter, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: events, Pagination: meta})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event's fields. Date ordering and category/location existence are re-validated. An empty status keeps the current one.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), req.toDomain(id)); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event along with its sessions and registrations. Completed events cannot be deleted.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event completed)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
