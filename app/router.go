package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/", app.indexHandler)
	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// users
	router.HandlerFunc(http.MethodGet, "/api/users", app.listUsersHandler)
	router.HandlerFunc(http.MethodPost, "/api/users", app.createUserHandler)
	router.HandlerFunc(http.MethodGet, "/api/users/:id", app.getUserHandler)
	router.HandlerFunc(http.MethodPut, "/api/users/:id", app.updateUserHandler)
	router.HandlerFunc(http.MethodDelete, "/api/users/:id", app.deleteUserHandler)

	// posts
	router.HandlerFunc(http.MethodGet, "/api/posts", app.listPostsHandler)
	router.HandlerFunc(http.MethodPost, "/api/posts", app.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/api/posts/:id", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/api/posts/:id", app.updatePostHandler)
	router.HandlerFunc(http.MethodDelete, "/api/posts/:id", app.deletePostHandler)

	// categories
	router.HandlerFunc(http.MethodGet, "/api/categories", app.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/api/categories", app.createCategoryHandler)
	router.HandlerFunc(http.MethodGet, "/api/categories/:id", app.getCategoryHandler)
	router.HandlerFunc(http.MethodPut, "/api/categories/:id", app.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/api/categories/:id", app.deleteCategoryHandler)

	// tags
	router.HandlerFunc(http.MethodGet, "/api/tags", app.listTagsHandler)
	router.HandlerFunc(http.MethodPost, "/api/tags", app.createTagHandler)
	router.HandlerFunc(http.MethodGet, "/api/tags/:id", app.getTagHandler)
	router.HandlerFunc(http.MethodPut, "/api/tags/:id", app.updateTagHandler)
	router.HandlerFunc(http.MethodDelete, "/api/tags/:id", app.deleteTagHandler)

	// comments
	router.HandlerFunc(http.MethodGet, "/api/comments", app.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/api/comments", app.createCommentHandler)
	router.HandlerFunc(http.MethodGet, "/api/comments/:id", app.getCommentHandler)
	router.HandlerFunc(http.MethodPut, "/api/comments/:id", app.updateCommentHandler)
	router.HandlerFunc(http.MethodDelete, "/api/comments/:id", app.deleteCommentHandler)

	return app.recoverPanic(app.logRequest(app.enableCORS(app.requireAPIKey(router))))
}
