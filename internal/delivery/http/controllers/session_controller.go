package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// SessionRequest is the request body for POST /events/{eventID}/sessions and PUT /sessions/{sessionID}.
type SessionRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	RoomID      int64     `json:"room_id"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title is required")
	}
	if s.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if s.EndTime.IsZero() {
		errs = append(errs, "end_time is required")
	}
	if s.RoomID < 1 {
		errs = append(errs, "room_id is required")
	}
	return errs
}

// SessionSuccessResponse is the success response envelope for endpoints returning a session.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionDetailSuccessResponse is the success response envelope for GET /sessions/{sessionID} (200).
type SessionDetailSuccessResponse struct {
	Data  *domain.SessionDetail `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ListSessionsSuccessResponse is the success response envelope for GET /events/{eventID}/sessions (200).
type ListSessionsSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AssignSpeakerRequest is the request body for POST /sessions/{sessionID}/speakers/{speakerID}.
type AssignSpeakerRequest struct {
	Role string `json:"role"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Create a session in an event
// @Description Creates a session. end_time must be strictly after start_time; the event and room must exist.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param body body SessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or room)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.CreateSession(r.Context(), &domain.Session{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EventID:     eventID,
		RoomID:      req.RoomID,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// GetSession godoc
// @Summary Get a session by ID
// @Description Returns the session hydrated with its room and assigned speakers.
// @Tags sessions
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} controllers.SessionDetailSuccessResponse "data contains the session detail"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	detail, err := c.Service.GetSessionByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// ListSessionsByEvent godoc
// @Summary List sessions of an event
// @Tags sessions
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/sessions [get]
func (c *SessionController) ListSessionsByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListSessionsByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// UpdateSession godoc
// @Summary Update a session
// @Description Replaces the session's fields. Time ordering and room existence are re-validated.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path int true "Session ID"
// @Param body body SessionRequest true "Session data"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [put]
func (c *SessionController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session := &domain.Session{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		RoomID:      req.RoomID,
	}
	if err := c.Service.UpdateSession(r.Context(), session); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Deletes a session and its speaker assignments and ratings. Returns 404 when no session exists with that ID.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path int true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [delete]
func (c *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	deleted, err := c.Service.DeleteSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if !deleted {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// AssignSpeaker godoc
// @Summary Assign a speaker to a session
// @Description Assigns the speaker with an optional role label. Fails with 409 when the speaker is already assigned.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path int true "Session ID"
// @Param speakerID path int true "Speaker ID"
// @Param body body AssignSpeakerRequest false "Optional role label"
// @Success 201 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session or speaker)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already assigned)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/speakers/{speakerID} [post]
func (c *SessionController) AssignSpeaker(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	speakerID, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	var req AssignSpeakerRequest
	if r.ContentLength > 0 {
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	if err := c.Service.AssignSpeaker(r.Context(), sessionID, speakerID, strings.TrimSpace(req.Role)); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, StatusResponse{Status: "assigned"})
}

// RemoveSpeaker godoc
// @Summary Remove a speaker from a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path int true "Session ID"
// @Param speakerID path int true "Speaker ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/speakers/{speakerID} [delete]
func (c *SessionController) RemoveSpeaker(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	speakerID, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	if err := c.Service.RemoveSpeaker(r.Context(), sessionID, speakerID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "removed"})
}
