package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service, logger *log.Logger) {
	controller := controllers.NewS3Controller(s3Service, logger)

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/generate-upload-url", controller.HandleGenerateUploadURL).Methods("POST")
	s3Router.HandleFunc("/get-read-url", controller.HandleGetReadURL).Methods("POST")
}
