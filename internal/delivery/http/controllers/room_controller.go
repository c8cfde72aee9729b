package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// RoomRequest is the request body for POST /locations/{locationID}/rooms and PUT /rooms/{roomID}.
type RoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Validate implements Validator.
func (rr RoomRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(rr.Name) == "" {
		errs = append(errs, "name is required")
	}
	if rr.Capacity < 0 {
		errs = append(errs, "capacity must be non-negative")
	}
	return errs
}

// RoomSuccessResponse is the success response envelope for single-room endpoints.
type RoomSuccessResponse struct {
	Data  *domain.Room      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRoomsSuccessResponse is the success response envelope for GET /locations/{locationID}/rooms (200).
type ListRoomsSuccessResponse struct {
	Data  []*domain.Room    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RoomController struct {
	Logger  *slog.Logger
	Service domain.RoomService
}

func NewRoomController(logger *slog.Logger, svc domain.RoomService) *RoomController {
	return &RoomController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRoom godoc
// @Summary Create a room in a location
// @Description Creates a room. The room name must be unique within the location.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param locationID path int true "Location ID"
// @Param body body RoomRequest true "Room data"
// @Success 201 {object} controllers.RoomSuccessResponse "data contains the created room"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (location)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name in location)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{locationID}/rooms [post]
func (c *RoomController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(w, r, "locationID")
	if !ok {
		return
	}
	var req RoomRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	room, err := c.Service.CreateRoom(r.Context(), &domain.Room{
		Name:       strings.TrimSpace(req.Name),
		Capacity:   req.Capacity,
		LocationID: locationID,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, room)
}

// GetRoom godoc
// @Summary Get a room by ID
// @Tags rooms
// @Produce json
// @Param roomID path int true "Room ID"
// @Success 200 {object} controllers.RoomSuccessResponse "data contains the room"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID} [get]
func (c *RoomController) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	room, err := c.Service.GetRoomByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, room)
}

// ListRoomsByLocation godoc
// @Summary List rooms of a location
// @Tags rooms
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} controllers.ListRoomsSuccessResponse "data is an array of rooms"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (location)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{locationID}/rooms [get]
func (c *RoomController) ListRoomsByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(w, r, "locationID")
	if !ok {
		return
	}
	rooms, err := c.Service.ListRoomsByLocation(r.Context(), locationID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rooms)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomID path int true "Room ID"
// @Param body body RoomRequest true "Room data"
// @Success 200 {object} controllers.RoomSuccessResponse "data contains the updated room"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name in location)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID} [put]
func (c *RoomController) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	var req RoomRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	room, err := c.Service.GetRoomByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	room.Name = strings.TrimSpace(req.Name)
	room.Capacity = req.Capacity
	if err := c.Service.UpdateRoom(r.Context(), room); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Description Deletes a room. Fails with 409 while sessions are scheduled in the room. Returns 404 when no room exists with that ID.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path int true "Room ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room has sessions)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID} [delete]
func (c *RoomController) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	deleted, err := c.Service.DeleteRoom(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if !deleted {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "room not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
