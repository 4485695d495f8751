package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sushihentaime/blogcms/internal/common"
)

const (
	errMissingAPIKey = "API key is required. Provide it via X-API-Key header or api_key query parameter."
	errInvalidAPIKey = "Invalid API key."
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	err := app.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "resource not found")
}

// invalidIDResponse rejects a malformed id path parameter.
func (app *application) invalidIDResponse(w http.ResponseWriter, r *http.Request, resource string) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID", resource))
}

// resourceNotFoundResponse reports a well-formed id with no matching row.
func (app *application) resourceNotFoundResponse(w http.ResponseWriter, r *http.Request, resource string) {
	app.writeErrorResponse(w, r, http.StatusNotFound, resource+" not found")
}

func (app *application) failedValidationErrorResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, errors)
}

func (app *application) missingAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, errMissingAPIKey)
}

func (app *application) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, errInvalidAPIKey)
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// writeFailedResponse hides a store error behind a generic message.
func (app *application) writeFailedResponse(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusBadRequest, message)
}

// serviceErrorResponse maps the errors every service shares for a create,
// update or delete of resource. Duplicates are handled by the caller first.
func (app *application) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error, resource, action string) {
	var (
		validationErr common.ValidationError
		requiredErr   common.RequiredFieldsError
		refErr        *common.ReferenceError
	)

	switch {
	case errors.Is(err, common.ErrRecordNotFound):
		app.resourceNotFoundResponse(w, r, resource)
	case errors.As(err, &validationErr):
		app.failedValidationErrorResponse(w, r, validationErr.Errors)
	case errors.As(err, &requiredErr):
		app.badRequestErrorResponse(w, r, requiredErr)
	case errors.As(err, &refErr):
		app.badRequestErrorResponse(w, r, refErr)
	default:
		app.writeFailedResponse(w, r, err, fmt.Sprintf("failed to %s %s", action, strings.ToLower(resource)))
	}
}

// readErrorResponse maps the errors of a single-row lookup.
func (app *application) readErrorResponse(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, common.ErrRecordNotFound):
		app.resourceNotFoundResponse(w, r, resource)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
