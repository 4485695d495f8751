package main

import "net/http"

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Environment,
			"version":     app.config.Version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.logger.Error(err.Error())
		http.Error(w, "the server encountered a problem and could not process your request", http.StatusInternalServerError)
	}
}

// indexHandler describes the API. It is served without an API key.
func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"message": "Blog/CMS API",
		"version": app.config.Version,
		"endpoints": map[string]string{
			"users":      "/api/users",
			"posts":      "/api/posts",
			"categories": "/api/categories",
			"tags":       "/api/tags",
			"comments":   "/api/comments",
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
