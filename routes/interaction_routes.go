package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func RegisterInteractionRoutes(r *mux.Router, interactionService *services.InteractionService, logger *log.Logger) {
	controller := controllers.NewInteractionController(interactionService, logger)

	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()
	interactionRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	interactionRouter.HandleFunc("/message", controller.HandleMessage).Methods("POST")
}
