package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/domain"
)

// Controllers bundles the controllers wired by NewRouter.
type Controllers struct {
	Auth          *controllers.AuthController
	Category      *controllers.CategoryController
	Location      *controllers.LocationController
	Room          *controllers.RoomController
	Event         *controllers.EventController
	Registration  *controllers.RegistrationController
	Participant   *controllers.ParticipantController
	Session       *controllers.SessionController
	Speaker       *controllers.SpeakerController
	Rating        *controllers.RatingController
}

// NewRouter initializes the HTTP router with all application routes.
// Catalogue reads are public; every mutating route and all participant
// data requires a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Categories
	mux.HandleFunc("GET /categories", c.Category.ListCategories)
	mux.HandleFunc("GET /categories/{categoryID}", c.Category.GetCategory)
	mux.HandleFunc("POST /categories", auth(c.Category.CreateCategory))
	mux.HandleFunc("PUT /categories/{categoryID}", auth(c.Category.UpdateCategory))
	mux.HandleFunc("DELETE /categories/{categoryID}", auth(c.Category.DeleteCategory))

	// Locations and rooms
	mux.HandleFunc("GET /locations", c.Location.ListLocations)
	mux.HandleFunc("GET /locations/{locationID}", c.Location.GetLocation)
	mux.HandleFunc("POST /locations", auth(c.Location.CreateLocation))
	mux.HandleFunc("PUT /locations/{locationID}", auth(c.Location.UpdateLocation))
	mux.HandleFunc("DELETE /locations/{locationID}", auth(c.Location.DeleteLocation))
	mux.HandleFunc("GET /locations/{locationID}/rooms", c.Room.ListRoomsByLocation)
	mux.HandleFunc("POST /locations/{locationID}/rooms", auth(c.Room.CreateRoom))
	mux.HandleFunc("GET /rooms/{roomID}", c.Room.GetRoom)
	mux.HandleFunc("PUT /rooms/{roomID}", auth(c.Room.UpdateRoom))
	mux.HandleFunc("DELETE /rooms/{roomID}", auth(c.Room.DeleteRoom))

	// Events
	mux.HandleFunc("GET /events", c.Event.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("POST /events", auth(c.Event.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.DeleteEvent))

	// Registrations
	mux.HandleFunc("GET /events/{eventID}/registrations", auth(c.Registration.ListRegistrations))
	mux.HandleFunc("POST /events/{eventID}/registrations/{participantID}", auth(c.Registration.RegisterParticipant))
	mux.HandleFunc("DELETE /events/{eventID}/registrations/{participantID}", auth(c.Registration.UnregisterParticipant))
	mux.HandleFunc("PATCH /events/{eventID}/registrations/{participantID}/attendance", auth(c.Registration.MarkAttendance))

	// Participants
	mux.HandleFunc("GET /participants", auth(c.Participant.ListParticipants))
	mux.HandleFunc("GET /participants/{participantID}", auth(c.Participant.GetParticipant))
	mux.HandleFunc("POST /participants", auth(c.Participant.CreateParticipant))
	mux.HandleFunc("PUT /participants/{participantID}", auth(c.Participant.UpdateParticipant))
	mux.HandleFunc("DELETE /participants/{participantID}", auth(c.Participant.DeleteParticipant))
	mux.HandleFunc("GET /participants/{participantID}/ratings", auth(c.Rating.ListRatingsByParticipant))

	// Sessions and speaker assignments
	mux.HandleFunc("GET /events/{eventID}/sessions", c.Session.ListSessionsByEvent)
	mux.HandleFunc("POST /events/{eventID}/sessions", auth(c.Session.CreateSession))
	mux.HandleFunc("GET /sessions/{sessionID}", c.Session.GetSession)
	mux.HandleFunc("PUT /sessions/{sessionID}", auth(c.Session.UpdateSession))
	mux.HandleFunc("DELETE /sessions/{sessionID}", auth(c.Session.DeleteSession))
	mux.HandleFunc("POST /sessions/{sessionID}/speakers/{speakerID}", auth(c.Session.AssignSpeaker))
	mux.HandleFunc("DELETE /sessions/{sessionID}/speakers/{speakerID}", auth(c.Session.RemoveSpeaker))

	// Speakers
	mux.HandleFunc("GET /speakers", c.Speaker.ListSpeakers)
	mux.HandleFunc("GET /speakers/{speakerID}", c.Speaker.GetSpeaker)
	mux.HandleFunc("POST /speakers", auth(c.Speaker.CreateSpeaker))
	mux.HandleFunc("PUT /speakers/{speakerID}", auth(c.Speaker.UpdateSpeaker))
	mux.HandleFunc("DELETE /speakers/{speakerID}", auth(c.Speaker.DeleteSpeaker))

	// Ratings (left by participants, no admin token required)
	mux.HandleFunc("GET /sessions/{sessionID}/ratings", c.Rating.ListRatingsBySession)
	mux.HandleFunc("GET /sessions/{sessionID}/ratings/average", c.Rating.GetAverageRating)
	mux.HandleFunc("POST /sessions/{sessionID}/ratings", c.Rating.CreateRating)
	mux.HandleFunc("PUT /ratings/{ratingID}", c.Rating.UpdateRating)
	mux.HandleFunc("DELETE /ratings/{ratingID}", c.Rating.DeleteRating)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
