package ui

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devil2devil.org/economy-web/internal/web/admincatalog"
	"devil2devil.org/economy-web/internal/web/apiclient"
	"devil2devil.org/economy-web/internal/web/templates"
)

type adminCategoriesData struct {
	templates.BaseData
	Categories []admincatalog.Category
	Form       admincatalog.CategoryRequest
	Error      string
}

// AdminCategoriesPage renders the category manager.
func (h *Handlers) AdminCategoriesPage(w http.ResponseWriter, r *http.Request) {
	h.renderCategories(w, r, admincatalog.CategoryRequest{}, "")
}

func (h *Handlers) renderCategories(w http.ResponseWriter, r *http.Request, form admincatalog.CategoryRequest, errMsg string) {
	categories, err := h.catalog.ListCategories(r.Context(), token(r))
	if err != nil {
		log.Printf("admincatalog: list categories failed: %v", err)
		h.RenderError(w, r, "Categories could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "admin_categories", adminCategoriesData{
		BaseData:   h.base(r, "Categories"),
		Categories: categories,
		Form:       form,
		Error:      errMsg,
	})
}

// AdminCategoryCreate adds a category. A rejected name re-renders the page
// with the submitted value kept in the field.
func (h *Handlers) AdminCategoryCreate(w http.ResponseWriter, r *http.Request) {
	req := admincatalog.CategoryRequest{Name: r.PostFormValue("name")}

	category, err := h.catalog.CreateCategory(r.Context(), token(r), req)
	if err != nil {
		h.renderCategories(w, r, req, userMessage(err, "The category could not be created."))
		return
	}

	flash(r, "success", category.Name+" created.")
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// AdminCategoryUpdate renames a category.
func (h *Handlers) AdminCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	req := admincatalog.CategoryRequest{Name: r.PostFormValue("name")}
	category, err := h.catalog.UpdateCategory(r.Context(), token(r), id, req)
	if err != nil {
		h.renderCategories(w, r, req, userMessage(err, "The category could not be renamed."))
		return
	}

	flash(r, "success", "Renamed to "+category.Name+".")
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// AdminCategoryDelete removes a category; its products fall back to general.
func (h *Handlers) AdminCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), token(r), id); err != nil {
		log.Printf("admincatalog: delete category %d failed: %v", id, err)
		flash(r, "error", userMessage(err, "The category could not be deleted."))
	} else {
		flash(r, "success", "Category deleted.")
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// AdminCategoryAssign bulk-moves products into the category.
func (h *Handlers) AdminCategoryAssign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	mode := admincatalog.AssignMode(r.PostFormValue("mode"))
	result, err := h.catalog.AssignCategory(r.Context(), token(r), id, mode)
	if err != nil {
		log.Printf("admincatalog: assign category %d failed: %v", id, err)
		flash(r, "error", userMessage(err, "The products could not be assigned."))
	} else {
		flash(r, "success", fmt.Sprintf("%d products assigned.", result.Updated))
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// userMessage surfaces backend validation text to the admin; anything else
// falls back to the given generic message.
func userMessage(err error, fallback string) string {
	var se *apiclient.StatusError
	if errors.As(err, &se) && se.StatusCode < 500 && se.Message != "" {
		return se.Message
	}
	return fallback
}
