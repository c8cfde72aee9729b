package controllers

import (
	"log/slog"
	"net/http"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// CreateRatingRequest is the request body for POST /sessions/{sessionID}/ratings.
type CreateRatingRequest struct {
	ParticipantID int64  `json:"participant_id"`
	Score         int    `json:"score"`
	Comment       string `json:"comment"`
}

// Validate implements Validator.
func (c CreateRatingRequest) Validate() []string {
	var errs []string
	if c.ParticipantID < 1 {
		errs = append(errs, "participant_id is required")
	}
	if c.Score == 0 {
		errs = append(errs, "score is required")
	}
	return errs
}

// UpdateRatingRequest is the request body for PUT /ratings/{ratingID}.
type UpdateRatingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Validate implements Validator.
func (u UpdateRatingRequest) Validate() []string {
	if u.Score == 0 {
		return []string{"score is required"}
	}
	return nil
}

// RatingSuccessResponse is the success response envelope for single-rating endpoints.
type RatingSuccessResponse struct {
	Data  *domain.Rating    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRatingsSuccessResponse is the success response envelope for rating list endpoints.
type ListRatingsSuccessResponse struct {
	Data  []*domain.Rating  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AverageRatingResponse is the data payload for GET /sessions/{sessionID}/ratings/average.
// Average is null when the session has no ratings.
type AverageRatingResponse struct {
	SessionID int64    `json:"session_id"`
	Average   *float64 `json:"average"`
}

// AverageRatingSuccessResponse is the success response envelope for GET /sessions/{sessionID}/ratings/average (200).
type AverageRatingSuccessResponse struct {
	Data  AverageRatingResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type RatingController struct {
	Logger  *slog.Logger
	Service domain.RatingService
}

func NewRatingController(logger *slog.Logger, svc domain.RatingService) *RatingController {
	return &RatingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRating godoc
// @Summary Rate a session
// @Description Creates a rating with a score from 1 to 5. One rating per participant per session; a duplicate fails with 409.
// @Tags ratings
// @Accept json
// @Produce json
// @Param sessionID path int true "Session ID"
// @Param body body CreateRatingRequest true "Rating data"
// @Success 201 {object} controllers.RatingSuccessResponse "data contains the created rating"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (score out of range)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session or participant)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already rated)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/ratings [post]
func (c *RatingController) CreateRating(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	var req CreateRatingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rating, err := c.Service.CreateRating(r.Context(), &domain.Rating{
		SessionID:     sessionID,
		ParticipantID: req.ParticipantID,
		Score:         req.Score,
		Comment:       req.Comment,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rating)
}

// UpdateRating godoc
// @Summary Update a rating
// @Description Updates the score and comment of a rating. Returns 404 when no rating exists with that ID.
// @Tags ratings
// @Accept json
// @Produce json
// @Param ratingID path int true "Rating ID"
// @Param body body UpdateRatingRequest true "Rating data"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (score out of range)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ratings/{ratingID} [put]
func (c *RatingController) UpdateRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "ratingID")
	if !ok {
		return
	}
	var req UpdateRatingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateRating(r.Context(), &domain.Rating{
		ID:      id,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if !updated {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "rating not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// DeleteRating godoc
// @Summary Delete a rating
// @Description Deletes a rating. Returns 404 when no rating exists with that ID.
// @Tags ratings
// @Produce json
// @Param ratingID path int true "Rating ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ratings/{ratingID} [delete]
func (c *RatingController) DeleteRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "ratingID")
	if !ok {
		return
	}
	deleted, err := c.Service.DeleteRating(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if !deleted {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "rating not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// ListRatingsBySession godoc
// @Summary List ratings of a session
// @Tags ratings
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} controllers.ListRatingsSuccessResponse "data is an array of ratings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/ratings [get]
func (c *RatingController) ListRatingsBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	ratings, err := c.Service.GetRatingsBySession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if ratings == nil {
		ratings = []*domain.Rating{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ratings)
}

// ListRatingsByParticipant godoc
// @Summary List ratings left by a participant
// @Tags ratings
// @Produce json
// @Param participantID path int true "Participant ID"
// @Success 200 {object} controllers.ListRatingsSuccessResponse "data is an array of ratings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (participant)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID}/ratings [get]
func (c *RatingController) ListRatingsByParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	ratings, err := c.Service.GetRatingsByParticipant(r.Context(), participantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if ratings == nil {
		ratings = []*domain.Rating{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ratings)
}

// GetAverageRating godoc
// @Summary Get the average rating of a session
// @Description Returns the average score of a session's ratings. average is null when the session has no ratings.
// @Tags ratings
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} controllers.AverageRatingSuccessResponse "data contains session_id and average"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/ratings/average [get]
func (c *RatingController) GetAverageRating(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	avg, found, err := c.Service.GetAverageRatingForSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	resp := AverageRatingResponse{SessionID: sessionID}
	if found {
		resp.Average = &avg
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
