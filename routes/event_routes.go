package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func RegisterEventRoutes(r *mux.Router, eventService *services.EventService, logger *log.Logger) {
	controller := controllers.NewEventController(eventService, logger)

	eventRouter := r.PathPrefix("/api/events").Subrouter()
	eventRouter.HandleFunc("/create", controller.HandleCreateEvent).Methods("POST")
	eventRouter.HandleFunc("/get", controller.HandleGetEvent).Methods("POST")
	eventRouter.HandleFunc("/list", controller.HandleListEvents).Methods("GET")
}
