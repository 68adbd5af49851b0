// internal/server/handlers.go
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "activity-signups/internal/common/errors"
	"activity-signups/internal/common/logger"
	"activity-signups/internal/common/metrics"
	"activity-signups/internal/registry"
)

// Handler serves the sign-up API over an activity registry.
type Handler struct {
	registry *registry.Registry
	logger   logger.Logger
}

func NewHandler(reg *registry.Registry, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// ListActivities handles GET /activities: the full name -> record mapping.
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.List())
}

// Signup handles POST /activities/{name}/signup?email=...
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if stdErr := h.requireActivityAndEmail(name, email); stdErr != nil {
		metrics.SignupsTotal.WithLabelValues(string(stdErr.Code)).Inc()
		writeStandardError(w, stdErr)
		return
	}

	if err := h.registry.Signup(name, email); err != nil {
		stdErr := h.translate(err, name, email)
		h.logger.Warn("signup rejected", map[string]interface{}{
			"activity": name,
			"email":    email,
			"code":     string(stdErr.Code),
		})
		metrics.SignupsTotal.WithLabelValues(string(stdErr.Code)).Inc()
		writeStandardError(w, stdErr)
		return
	}

	h.logger.Info("signup", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	metrics.ActivityParticipants.WithLabelValues(name).Set(float64(h.registry.ParticipantCount(name)))

	writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

// Unregister handles POST /activities/{name}/unregister?email=...
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if stdErr := h.requireActivityAndEmail(name, email); stdErr != nil {
		metrics.UnregistrationsTotal.WithLabelValues(string(stdErr.Code)).Inc()
		writeStandardError(w, stdErr)
		return
	}

	if err := h.registry.Unregister(name, email); err != nil {
		stdErr := h.translate(err, name, email)
		h.logger.Warn("unregister rejected", map[string]interface{}{
			"activity": name,
			"email":    email,
			"code":     string(stdErr.Code),
		})
		metrics.UnregistrationsTotal.WithLabelValues(string(stdErr.Code)).Inc()
		writeStandardError(w, stdErr)
		return
	}

	h.logger.Info("unregister", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	metrics.UnregistrationsTotal.WithLabelValues("ok").Inc()
	metrics.ActivityParticipants.WithLabelValues(name).Set(float64(h.registry.ParticipantCount(name)))

	writeMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}

// Root handles GET /: a temporary redirect to the static front-end.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// requireActivityAndEmail applies the shared preconditions of the mutating
// operations. Activity existence is checked first so that any operation on
// an unknown activity is a 404, even when the email is also missing.
func (h *Handler) requireActivityAndEmail(name, email string) *apperrors.StandardError {
	if _, err := h.registry.Get(name); err != nil {
		return apperrors.NewActivityNotFoundError(name)
	}
	if email == "" {
		return apperrors.NewMissingEmailError()
	}
	return nil
}

// translate maps registry sentinel errors onto the standardized taxonomy.
func (h *Handler) translate(err error, name, email string) *apperrors.StandardError {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		return apperrors.NewActivityNotFoundError(name)
	case errors.Is(err, registry.ErrAlreadyRegistered):
		return apperrors.NewAlreadyRegisteredError(name, email)
	case errors.Is(err, registry.ErrNotRegistered):
		return apperrors.NewNotRegisteredError(name, email)
	default:
		return apperrors.NewInternalError(err)
	}
}
