package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"soapbox/app/repositories"
	"soapbox/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(service *services.CommentService) *CommentController {
	return &CommentController{commentService: service}
}

// NewCommentControllerWithDB creates a new CommentController backed by a
// Badger-based repository.
func NewCommentControllerWithDB(db *badger.DB) *CommentController {
	repo := repositories.NewBadgerCommentRepository(db)
	return &CommentController{commentService: services.NewCommentService(repo)}
}

// commentRequest mirrors the payload the web client posts. The timestamp
// field is accepted for compatibility but the server clock is
// authoritative, so it is never read.
type commentRequest struct {
	PersonKey string `json:"personKey"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error      string   `json:"error"`
	Kind       string   `json:"kind"`
	Violations []string `json:"violations,omitempty"`
}

type countResponse struct {
	PersonKey string `json:"personKey"`
	Count     int    `json:"count"`
}

// Create handles POST /api/comments
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cc.sendError(w, http.StatusBadRequest, errorResponse{
			Error: "Invalid JSON: " + err.Error(),
			Kind:  "malformed",
		})
		return
	}

	comment, err := cc.commentService.PostComment(req.PersonKey, req.Name, req.Text)
	if err != nil {
		cc.sendServiceError(w, err)
		return
	}

	cc.sendJSON(w, http.StatusCreated, comment)
}

// Index handles GET /api/comments/{personKey}
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	personKey := mux.Vars(r)["personKey"]

	comments, err := cc.commentService.GetComments(personKey)
	if err != nil {
		cc.sendServiceError(w, err)
		return
	}

	cc.sendJSON(w, http.StatusOK, comments)
}

// All handles GET /api/comments
func (cc *CommentController) All(w http.ResponseWriter, r *http.Request) {
	grouped, err := cc.commentService.GetAllComments()
	if err != nil {
		cc.sendServiceError(w, err)
		return
	}

	cc.sendJSON(w, http.StatusOK, grouped)
}

// Count handles GET /api/comments/{personKey}/count
func (cc *CommentController) Count(w http.ResponseWriter, r *http.Request) {
	personKey := mux.Vars(r)["personKey"]

	count, err := cc.commentService.GetCommentCount(personKey)
	if err != nil {
		cc.sendServiceError(w, err)
		return
	}

	cc.sendJSON(w, http.StatusOK, countResponse{PersonKey: personKey, Count: count})
}

// Helper methods for consistent response handling

func (cc *CommentController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (cc *CommentController) sendError(w http.ResponseWriter, status int, res errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(res)
}

// sendServiceError maps the service's typed rejections onto the response
// contract: kind plus, for content violations, every triggered rule label.
func (cc *CommentController) sendServiceError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	var uErr *services.UnavailableError

	switch {
	case errors.Is(err, services.ErrEmptyComment):
		cc.sendError(w, http.StatusBadRequest, errorResponse{
			Error: "Comment cannot be empty",
			Kind:  "empty",
		})
	case errors.As(err, &vErr):
		cc.sendError(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      vErr.Error(),
			Kind:       "validation",
			Violations: vErr.Violations,
		})
	case errors.As(err, &uErr):
		cc.sendError(w, http.StatusServiceUnavailable, errorResponse{
			Error: "Comment service is temporarily unavailable",
			Kind:  "unavailable",
		})
	default:
		cc.sendError(w, http.StatusInternalServerError, errorResponse{
			Error: err.Error(),
			Kind:  "internal",
		})
	}
}
