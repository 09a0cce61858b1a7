package ui

import (
	"errors"
	"log"
	"net/http"

	"devil2devil.org/economy-web/internal/web/adminfiles"
	"devil2devil.org/economy-web/internal/web/templates"
)

type adminFilesData struct {
	templates.BaseData
	Listing adminfiles.Listing
	Error   string
}

// AdminFilesPage renders the file manager grid with its stats strip.
func (h *Handlers) AdminFilesPage(w http.ResponseWriter, r *http.Request) {
	listing, err := h.files.List(r.Context(), token(r))
	if err != nil {
		log.Printf("adminfiles: list failed: %v", err)
		h.RenderError(w, r, "The files could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "admin_files", adminFilesData{
		BaseData: h.base(r, "File Manager"),
		Listing:  listing,
	})
}

// AdminFileUpload stores a submitted file.
func (h *Handlers) AdminFileUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || (err == nil && header.Filename == "") {
		if file != nil {
			_ = file.Close()
		}
		flash(r, "error", "Pick a file to upload first.")
		http.Redirect(w, r, "/admin/files", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	stored, err := h.files.Upload(r.Context(), token(r), adminfiles.Upload{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		log.Printf("adminfiles: upload %s failed: %v", header.Filename, err)
		flash(r, "error", userMessage(err, "The file could not be uploaded."))
	} else {
		flash(r, "success", stored.Name+" uploaded.")
	}
	http.Redirect(w, r, "/admin/files", http.StatusSeeOther)
}

// AdminFileDelete removes a file by its public path.
func (h *Handlers) AdminFileDelete(w http.ResponseWriter, r *http.Request) {
	path := r.PostFormValue("file_path")
	if path == "" {
		h.NotFound(w, r)
		return
	}

	if err := h.files.Delete(r.Context(), token(r), path); err != nil {
		log.Printf("adminfiles: delete %s failed: %v", path, err)
		flash(r, "error", userMessage(err, "The file could not be deleted."))
	} else {
		flash(r, "success", "File deleted.")
	}
	http.Redirect(w, r, "/admin/files", http.StatusSeeOther)
}
