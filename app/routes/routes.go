// Package routes assembles the HTTP surface of the comment service.
package routes

import (
	"net/http"

	"soapbox/app/controllers"
	"soapbox/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(db *badger.DB, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.ContentTypeJSON)

	commentController := controllers.NewCommentControllerWithDB(db)
	filterController := controllers.NewFilterController()

	api := router.PathPrefix("/api").Subrouter()

	// Comments API endpoints
	comments := api.PathPrefix("/comments").Subrouter()
	comments.HandleFunc("", commentController.All).Methods("GET")
	comments.HandleFunc("", commentController.Create).Methods("POST")
	comments.HandleFunc("/{personKey}", commentController.Index).Methods("GET")
	comments.HandleFunc("/{personKey}/count", commentController.Count).Methods("GET")

	// Advisory content check for the web client
	api.HandleFunc("/filter/check", filterController.Check).Methods("GET")

	// Liveness probe
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	return router
}
