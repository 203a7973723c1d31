package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService, interactionService *services.InteractionService, logger *log.Logger) {
	controller := controllers.NewProfileController(profileService, interactionService, logger)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("/create", controller.HandleCreateProfile).Methods("POST")
	profileRouter.HandleFunc("/get-by-event", controller.HandleGetProfilesByEvent).Methods("POST")
	profileRouter.HandleFunc("/delete", controller.HandleDeleteProfile).Methods("POST")
	profileRouter.HandleFunc("/{profileId}", controller.HandleGetProfile).Methods("GET")
}
