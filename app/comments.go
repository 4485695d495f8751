package main

import (
	"net/http"

	"github.com/sushihentaime/blogcms/internal/commentservice"
)

func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	comments, err := app.commentService.GetComments(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, comments, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "comment")
		return
	}

	comment, err := app.commentService.GetCommentByID(r.Context(), id)
	if err != nil {
		app.readErrorResponse(w, r, err, "Comment")
		return
	}

	err = app.writeJSON(w, http.StatusOK, comment, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input commentservice.CreateCommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.commentService.CreateComment(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err, "Comment", "create")
		return
	}

	err = app.writeJSON(w, http.StatusCreated, comment, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "comment")
		return
	}

	var input commentservice.CommentPatch

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.commentService.UpdateComment(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err, "Comment", "update")
		return
	}

	err = app.writeJSON(w, http.StatusOK, comment, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "comment")
		return
	}

	err = app.commentService.DeleteComment(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err, "Comment", "delete")
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Comment deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
