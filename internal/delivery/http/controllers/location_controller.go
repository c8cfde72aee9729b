package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// LocationRequest is the request body for POST /locations and PUT /locations/{locationID}.
type LocationRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
}

// Validate implements Validator.
func (l LocationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(l.Address) == "" {
		errs = append(errs, "address is required")
	}
	if strings.TrimSpace(l.City) == "" {
		errs = append(errs, "city is required")
	}
	if strings.TrimSpace(l.Country) == "" {
		errs = append(errs, "country is required")
	}
	if l.Capacity < 0 {
		errs = append(errs, "capacity must be non-negative")
	}
	return errs
}

func (l LocationRequest) toDomain(id int64) *domain.Location {
	return &domain.Location{
		ID:       id,
		Name:     strings.TrimSpace(l.Name),
		Address:  strings.TrimSpace(l.Address),
		City:     strings.TrimSpace(l.City),
		Country:  strings.TrimSpace(l.Country),
		Capacity: l.Capacity,
	}
}

// LocationSuccessResponse is the success response envelope for single-location endpoints.
type LocationSuccessResponse struct {
	Data  *domain.Location  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListLocationsSuccessResponse is the success response envelope for GET /locations (200).
type ListLocationsSuccessResponse struct {
	Data  []*domain.Location `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type LocationController struct {
	Logger  *slog.Logger
	Service domain.LocationService
}

func NewLocationController(logger *slog.Logger, svc domain.LocationService) *LocationController {
	return &LocationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateLocation godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LocationRequest true "Location data"
// @Success 201 {object} controllers.LocationSuccessResponse "data contains the created location"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations [post]
func (c *LocationController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	location, err := c.Service.CreateLocation(r.Context(), req.toDomain(0))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, location)
}

// GetLocation godoc
// @Summary Get a location by ID
// @Tags locations
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} controllers.LocationSuccessResponse "data contains the location"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{locationID} [get]
func (c *LocationController) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "locationID")
	if !ok {
		return
	}
	location, err := c.Service.GetLocationByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, location)
}

// ListLocations godoc
// @Summary List all locations
// @Tags locations
// @Produce json
// @Success 200 {object} controllers.ListLocationsSuccessResponse "data is an array of locations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations [get]
func (c *LocationController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Service.ListLocations(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if locations == nil {
		locations = []*domain.Location{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, locations)
}

// UpdateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param locationID path int true "Location ID"
// @Param body body LocationRequest true "Location data"
// @Success 200 {object} controllers.LocationSuccessResponse "data contains the updated location"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{locationID} [put]
func (c *LocationController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "locationID")
	if !ok {
		return
	}
	var req LocationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	location := req.toDomain(id)
	if err := c.Service.UpdateLocation(r.Context(), location); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, location)
}

// DeleteLocation godoc
// @Summary Delete a location
// @Description Deletes a location. Returns 404 when no location exists with that ID.
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param locationID path int true "Location ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{locationID} [delete]
func (c *LocationController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "locationID")
	if !ok {
		return
	}
	deleted, err := c.Service.DeleteLocation(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if !deleted {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "location not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
