package controllers

import (
	"encoding/json"
	"net/http"

	"soapbox/app/filter"
)

// FilterController exposes the content filter as an advisory endpoint so
// the web client can show feedback from the exact rule set the server
// enforces instead of shipping its own copy.
type FilterController struct{}

// NewFilterController creates a new FilterController
func NewFilterController() *FilterController {
	return &FilterController{}
}

// Check handles GET /api/filter/check?text=...
func (fc *FilterController) Check(w http.ResponseWriter, r *http.Request) {
	verdict := filter.Check(r.URL.Query().Get("text"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verdict)
}
