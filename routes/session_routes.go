package routes

import (
	"mingle_server/controllers"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func RegisterSessionRoutes(r *mux.Router, sessions controllers.SessionManager, logger *log.Logger) {
	controller := controllers.NewSessionController(sessions, logger)

	sessionRouter := r.PathPrefix("/api/session").Subrouter()
	sessionRouter.HandleFunc("/join", controller.HandleJoin).Methods("POST")
	sessionRouter.HandleFunc("/clear", controller.HandleClear).Methods("POST")
	sessionRouter.HandleFunc("/verify", controller.HandleVerify).Methods("POST")
	sessionRouter.HandleFunc("/force-cleanup", controller.HandleForceCleanup).Methods("POST")
	sessionRouter.HandleFunc("/image", controller.HandleSetImage).Methods("POST")
}
