package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ParticipantRequest is the request body for POST /participants and PUT /participants/{participantID}.
type ParticipantRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	JobTitle  string `json:"job_title"`
}

// Validate implements Validator.
func (p ParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	email := strings.TrimSpace(strings.ToLower(p.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

func (p ParticipantRequest) toDomain(id int64) *domain.Participant {
	return &domain.Participant{
		ID:        id,
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Email:     strings.TrimSpace(strings.ToLower(p.Email)),
		Company:   p.Company,
		JobTitle:  p.JobTitle,
	}
}

// ParticipantSuccessResponse is the success response envelope for single-participant endpoints.
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListParticipantsResponse is the data payload for GET /participants (200).
type ListParticipantsResponse struct {
	Items      []*domain.Participant  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListParticipantsSuccessResponse is the success response envelope for GET /participants (200).
type ListParticipantsSuccessResponse struct {
	Data  ListParticipantsResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateParticipant godoc
// @Summary Create a participant
// @Description Creates a participant. Email must be unique across participants.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ParticipantRequest true "Participant data"
// @Success 201 {object} controllers.ParticipantSuccessResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [post]
func (c *ParticipantController) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant, err := c.Service.CreateParticipant(r.Context(), req.toDomain(0))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// GetParticipant godoc
// @Summary Get a participant by ID
// @Tags participants
// @Produce json
// @Param participantID path int true "Participant ID"
// @Success 200 {object} controllers.ParticipantSuccessResponse "data contains the participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [get]
func (c *ParticipantController) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	participant, err := c.Service.GetParticipantByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// ListParticipants godoc
// @Summary List participants
// @Tags participants
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListParticipantsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	participants, total, err := c.Service.ListParticipants(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListParticipantsResponse{Items: participants, Pagination: meta})
}

// UpdateParticipant godoc
// @Summary Update a participant
// @Description Replaces the participant's fields. Email must stay unique.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participantID path int true "Participant ID"
// @Param body body ParticipantRequest true "Participant data"
// @Success 200 {object} controllers.ParticipantSuccessResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [put]
func (c *ParticipantController) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	var req ParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant := req.toDomain(id)
	if err := c.Service.UpdateParticipant(r.Context(), participant); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// DeleteParticipant godoc
// @Summary Delete a participant
// @Description Deletes a participant. Fails with 409 while the participant holds any event registration.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param participantID path int true "Participant ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (participant has registrations)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [delete]
func (c *ParticipantController) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	if err := c.Service.DeleteParticipant(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
