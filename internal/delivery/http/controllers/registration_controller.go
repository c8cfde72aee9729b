package controllers

import (
	"log/slog"
	"net/http"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// RegistrationSuccessResponse is the success response envelope for POST /events/{eventID}/registrations/{participantID} (201).
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListRegistrationsSuccessResponse is the success response envelope for GET /events/{eventID}/registrations (200).
type ListRegistrationsSuccessResponse struct {
	Data  []*domain.Registration `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// AttendanceRequest is the request body for PATCH /events/{eventID}/registrations/{participantID}/attendance.
type AttendanceRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (a AttendanceRequest) Validate() []string {
	if a.Status == "" {
		return []string{"status is required"}
	}
	return nil
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterParticipant godoc
// @Summary Register a participant for an event
// @Description Registers the participant for the event with status registered. Fails with 409 when the pair is already registered or the event is completed or cancelled. A confirmation email is sent after the registration is committed.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param participantID path int true "Participant ID"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or participant)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate or closed event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations/{participantID} [post]
func (c *RegistrationController) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	reg, err := c.Service.RegisterParticipant(r.Context(), eventID, participantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// UnregisterParticipant godoc
// @Summary Cancel a registration
// @Description Removes the participant's registration. Fails with 409 once the event's start date has passed.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param participantID path int true "Participant ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event already started)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations/{participantID} [delete]
func (c *RegistrationController) UnregisterParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	if err := c.Service.UnregisterParticipant(r.Context(), eventID, participantID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "unregistered"})
}

// MarkAttendance godoc
// @Summary Mark attendance for a registration
// @Description Moves a registration from registered to attended, cancelled, or no_show. Those statuses are terminal; further transitions fail with 409.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param participantID path int true "Participant ID"
// @Param body body AttendanceRequest true "Target status (attended, cancelled, no_show)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (registration already finalized)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations/{participantID}/attendance [patch]
func (c *RegistrationController) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	var req AttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.MarkAttendance(r.Context(), eventID, participantID, domain.AttendanceStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// ListRegistrations godoc
// @Summary List registrations of an event
// @Tags registrations
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.ListRegistrationsSuccessResponse "data is an array of registrations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [get]
func (c *RegistrationController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	regs, err := c.Service.ListRegistrationsByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}
