package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogcms/internal/tagservice"
)

// tagDuplicateErrors returns the field error for a unique violation, if err
// is one.
func tagDuplicateErrors(err error) map[string]string {
	switch {
	case errors.Is(err, tagservice.ErrDuplicateName):
		return map[string]string{"name": "a tag with this name already exists"}
	case errors.Is(err, tagservice.ErrDuplicateSlug):
		return map[string]string{"slug": "a tag with this slug already exists"}
	default:
		return nil
	}
}

func (app *application) listTagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := app.tagService.GetTags(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, tags, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getTagHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "tag")
		return
	}

	tag, err := app.tagService.GetTagByID(r.Context(), id)
	if err != nil {
		app.readErrorResponse(w, r, err, "Tag")
		return
	}

	err = app.writeJSON(w, http.StatusOK, tag, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createTagHandler(w http.ResponseWriter, r *http.Request) {
	var input tagservice.CreateTagRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	tag, err := app.tagService.CreateTag(r.Context(), &input)
	if err != nil {
		if fields := tagDuplicateErrors(err); fields != nil {
			app.failedValidationErrorResponse(w, r, fields)
			return
		}
		app.serviceErrorResponse(w, r, err, "Tag", "create")
		return
	}

	err = app.writeJSON(w, http.StatusCreated, tag, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateTagHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "tag")
		return
	}

	var input tagservice.TagPatch

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	tag, err := app.tagService.UpdateTag(r.Context(), id, &input)
	if err != nil {
		if fields := tagDuplicateErrors(err); fields != nil {
			app.failedValidationErrorResponse(w, r, fields)
			return
		}
		app.serviceErrorResponse(w, r, err, "Tag", "update")
		return
	}

	err = app.writeJSON(w, http.StatusOK, tag, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteTagHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "tag")
		return
	}

	err = app.tagService.DeleteTag(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err, "Tag", "delete")
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Tag deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
