package ui

import (
	"errors"
	"log"
	"net/http"

	"devil2devil.org/economy-web/internal/web/admineconomy"
	"devil2devil.org/economy-web/internal/web/admintemplates"
	"devil2devil.org/economy-web/internal/web/templates"
)

type adminTemplatesData struct {
	templates.BaseData
	RoleProducts []admintemplates.RoleProduct
	SkinProducts []admintemplates.SkinProduct
	DiscordRoles []admineconomy.Role
	RoleForm     admintemplates.RoleForm
	SkinForm     admintemplates.SkinForm
	Error        string
}

// AdminTemplatesPage renders both digital product template forms.
func (h *Handlers) AdminTemplatesPage(w http.ResponseWriter, r *http.Request) {
	h.renderTemplates(w, r, admintemplates.RoleForm{}, admintemplates.SkinForm{}, "")
}

func (h *Handlers) renderTemplates(w http.ResponseWriter, r *http.Request, roleForm admintemplates.RoleForm, skinForm admintemplates.SkinForm, errMsg string) {
	ctx := r.Context()

	roleProducts, err := h.templates.RoleProducts(ctx, token(r))
	if err != nil {
		log.Printf("admintemplates: list role products failed: %v", err)
		roleProducts = nil
	}
	skinProducts, err := h.templates.SkinProducts(ctx, token(r))
	if err != nil {
		log.Printf("admintemplates: list skin products failed: %v", err)
		skinProducts = nil
	}
	roles, err := h.economy.DiscordRoles(ctx, token(r))
	if err != nil {
		log.Printf("admintemplates: fetch roles failed: %v", err)
		roles = nil
	}

	h.render(w, r, "admin_digital_templates", adminTemplatesData{
		BaseData:     h.base(r, "Digital Templates"),
		RoleProducts: roleProducts,
		SkinProducts: skinProducts,
		DiscordRoles: roles,
		RoleForm:     roleForm,
		SkinForm:     skinForm,
		Error:        errMsg,
	})
}

// AdminTemplateRoleCreate creates a store product from the role template.
func (h *Handlers) AdminTemplateRoleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}

	form := admintemplates.RoleForm{
		RoleID:      r.PostFormValue("role_id"),
		ProductName: r.PostFormValue("product_name"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Stock:       r.PostFormValue("stock"),
	}

	file, header, err := r.FormFile("role_image")
	if err == nil && header.Filename != "" {
		defer file.Close()
		form.RoleImage = &admintemplates.FileUpload{Filename: header.Filename, Content: file}
	} else if err == nil {
		_ = file.Close()
	} else if !errors.Is(err, http.ErrMissingFile) {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}

	product, err := h.templates.CreateRoleProduct(r.Context(), token(r), form)
	if err != nil {
		h.renderTemplates(w, r, form, admintemplates.SkinForm{}, userMessage(err, "The role product could not be created."))
		return
	}

	flash(r, "success", product.Name+" created.")
	http.Redirect(w, r, "/admin/digital-templates", http.StatusSeeOther)
}

// AdminTemplateSkinCreate creates a store product from the skin template.
func (h *Handlers) AdminTemplateSkinCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}

	form := admintemplates.SkinForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Stock:       r.PostFormValue("stock"),
	}

	attach := func(field string) (*admintemplates.FileUpload, bool) {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		if err != nil {
			return nil, false
		}
		if header.Filename == "" {
			_ = file.Close()
			return nil, true
		}
		return &admintemplates.FileUpload{Filename: header.Filename, Content: file}, true
	}

	var ok bool
	if form.PreviewImage, ok = attach("preview_image"); !ok {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}
	if form.DownloadFile, ok = attach("download_file"); !ok {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}

	product, err := h.templates.CreateSkinProduct(r.Context(), token(r), form)
	if err != nil {
		h.renderTemplates(w, r, admintemplates.RoleForm{}, form, userMessage(err, "The skin product could not be created."))
		return
	}

	flash(r, "success", product.Name+" created.")
	http.Redirect(w, r, "/admin/digital-templates", http.StatusSeeOther)
}
