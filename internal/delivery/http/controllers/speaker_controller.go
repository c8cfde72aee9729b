package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// SpeakerRequest is the request body for POST /speakers and PUT /speakers/{speakerID}.
type SpeakerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Company   string `json:"company"`
}

// Validate implements Validator.
func (s SpeakerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

func (s SpeakerRequest) toDomain(id int64) *domain.Speaker {
	return &domain.Speaker{
		ID:        id,
		FirstName: strings.TrimSpace(s.FirstName),
		LastName:  strings.TrimSpace(s.LastName),
		Bio:       s.Bio,
		Email:     strings.TrimSpace(strings.ToLower(s.Email)),
		Company:   s.Company,
	}
}

// SpeakerSuccessResponse is the success response envelope for single-speaker endpoints.
type SpeakerSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSpeakersSuccessResponse is the success response envelope for GET /speakers (200).
type ListSpeakersSuccessResponse struct {
	Data  []*domain.Speaker `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSpeaker godoc
// @Summary Create a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SpeakerRequest true "Speaker data"
// @Success 201 {object} controllers.SpeakerSuccessResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req SpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker, err := c.Service.CreateSpeaker(r.Context(), req.toDomain(0))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// GetSpeaker godoc
// @Summary Get a speaker by ID
// @Tags speakers
// @Produce json
// @Param speakerID path int true "Speaker ID"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [get]
func (c *SpeakerController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	speaker, err := c.Service.GetSpeakerByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// ListSpeakers godoc
// @Summary List all speakers
// @Tags speakers
// @Produce json
// @Success 200 {object} controllers.ListSpeakersSuccessResponse "data is an array of speakers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// UpdateSpeaker godoc
// @Summary Update a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speakerID path int true "Speaker ID"
// @Param body body SpeakerRequest true "Speaker data"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the updated speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [put]
func (c *SpeakerController) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	var req SpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker := req.toDomain(id)
	if err := c.Service.UpdateSpeaker(r.Context(), speaker); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// DeleteSpeaker godoc
// @Summary Delete a speaker
// @Description Deletes a speaker and their session assignments. Returns 404 when no speaker exists with that ID.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param speakerID path int true "Speaker ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [delete]
func (c *SpeakerController) DeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	deleted, err := c.Service.DeleteSpeaker(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if !deleted {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
