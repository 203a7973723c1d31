package routes

import (
	"mingle_server/controllers"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func RegisterStatsRoutes(r *mux.Router, stats controllers.StatsProvider, broadcast controllers.StatsBroadcaster, logger *log.Logger) {
	controller := controllers.NewStatsController(stats, broadcast, logger)

	statsRouter := r.PathPrefix("/api/stats").Subrouter()
	statsRouter.HandleFunc("/get", controller.HandleGetStats).Methods("POST")
}
