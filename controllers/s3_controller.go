package controllers

import (
	"encoding/json"
	"net/http"

	"mingle_server/services"

	"github.com/charmbracelet/log"
)

// S3Controller serves presigned-URL generation for profile photos.
type S3Controller struct {
	Images *services.S3Service
	Log    *log.Logger
}

func NewS3Controller(images *services.S3Service, logger *log.Logger) *S3Controller {
	return &S3Controller{Images: images, Log: logger}
}

// HandleGenerateUploadURL generates a presigned URL for uploading a photo.
func (c *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.Images.GenerateUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		c.Log.Error("Failed to generate upload URL", "fileName", payload.FileName, "err", err)
		http.Error(w, `{"error": "Failed to generate pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// HandleGetReadURL generates a presigned read URL for a stored photo.
func (c *S3Controller) HandleGetReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := c.Images.GenerateReadURL(payload.Key)
	if err != nil {
		c.Log.Error("Failed to generate read URL", "key", payload.Key, "err", err)
		http.Error(w, `{"error": "Failed to generate read pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
