package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogcms/internal/categoryservice"
)

func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.categoryService.GetCategories(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, categories, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "category")
		return
	}

	category, err := app.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		app.readErrorResponse(w, r, err, "Category")
		return
	}

	err = app.writeJSON(w, http.StatusOK, category, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var input categoryservice.CreateCategoryRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	category, err := app.categoryService.CreateCategory(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrDuplicateName):
			app.failedValidationErrorResponse(w, r, map[string]string{"name": "a category with this name already exists"})
		default:
			app.serviceErrorResponse(w, r, err, "Category", "create")
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, category, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "category")
		return
	}

	var input categoryservice.CategoryPatch

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	category, err := app.categoryService.UpdateCategory(r.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrDuplicateName):
			app.failedValidationErrorResponse(w, r, map[string]string{"name": "a category with this name already exists"})
		default:
			app.serviceErrorResponse(w, r, err, "Category", "update")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, category, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.invalidIDResponse(w, r, "category")
		return
	}

	err = app.categoryService.DeleteCategory(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err, "Category", "delete")
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Category deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
