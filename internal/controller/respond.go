// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps service errors onto the API error body. Anything that
// is neither a validation nor a not-found error is a database-level
// failure and gets a generic 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case appErrors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
	case appErrors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": err.Error()})
	default:
		log.Println("⚠️ request failed:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal server error"})
	}
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

// parseDate parses an optional YYYY-MM-DD value, the format HTML date
// inputs post.
func parseDate(field string, val *string) (*time.Time, error) {
	if val == nil || *val == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *val)
	if err != nil {
		return nil, appErrors.NewValidation(field, "must be a YYYY-MM-DD date")
	}
	return &t, nil
}
