// internal/server/respond.go
package server

import (
	"encoding/json"
	"net/http"

	apperrors "activity-signups/internal/common/errors"
)

// messageResponse is the success envelope for mutating operations.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the client-error envelope: {"detail": "..."}.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

// writeStandardError translates a StandardError to its wire form using the
// explicit code -> status mapping. The human-readable message becomes the
// detail string.
func writeStandardError(w http.ResponseWriter, err *apperrors.StandardError) {
	writeJSON(w, apperrors.HTTPStatus(err.Code), detailResponse{Detail: err.Message})
}
