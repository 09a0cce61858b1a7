package ui

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devil2devil.org/economy-web/internal/web/admincatalog"
	"devil2devil.org/economy-web/internal/web/apiclient"
	"devil2devil.org/economy-web/internal/web/templates"
)

// maxUploadBytes bounds product and file submissions.
const maxUploadBytes = 32 << 20

type adminProductsData struct {
	templates.BaseData
	Products []admincatalog.Product
}

// AdminProductsPage renders the back-office product table.
func (h *Handlers) AdminProductsPage(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context(), token(r))
	if err != nil {
		log.Printf("admincatalog: list products failed: %v", err)
		h.RenderError(w, r, "Products could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "admin_products", adminProductsData{
		BaseData: h.base(r, "Products"),
		Products: products,
	})
}

type adminProductFormData struct {
	templates.BaseData
	Form       admincatalog.ProductForm
	Product    *admincatalog.Product
	Categories []admincatalog.Category
	Types      []string
	Error      string
}

func (h *Handlers) productFormData(r *http.Request, title string) adminProductFormData {
	categories, err := h.catalog.ListCategories(r.Context(), token(r))
	if err != nil {
		log.Printf("admincatalog: list categories failed: %v", err)
		categories = nil
	}
	return adminProductFormData{
		BaseData:   h.base(r, title),
		Categories: categories,
		Types:      admincatalog.ProductTypes,
	}
}

// AdminProductNewPage renders an empty product form.
func (h *Handlers) AdminProductNewPage(w http.ResponseWriter, r *http.Request) {
	data := h.productFormData(r, "New product")
	data.Form = admincatalog.ProductForm{
		Stock:    admincatalog.StockUnlimited,
		Category: "general",
	}
	h.render(w, r, "admin_product_form", data)
}

// AdminProductEditPage renders the form prefilled from an existing product.
func (h *Handlers) AdminProductEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	product, err := h.catalog.Product(r.Context(), token(r), id)
	if err != nil {
		if errors.Is(err, admincatalog.ErrProductNotFound) || apiclient.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		log.Printf("admincatalog: fetch product %d failed: %v", id, err)
		h.RenderError(w, r, "The product could not be loaded. Try again in a moment.")
		return
	}

	data := h.productFormData(r, "Edit "+product.Name)
	data.Product = product
	data.Form = formFromProduct(product)
	h.render(w, r, "admin_product_form", data)
}

func formFromProduct(p *admincatalog.Product) admincatalog.ProductForm {
	stock := admincatalog.StockUnlimited
	if p.Stock != nil {
		stock = strconv.Itoa(*p.Stock)
	}
	return admincatalog.ProductForm{
		Name:            p.Name,
		Description:     p.Description,
		Price:           strconv.Itoa(p.Price),
		Stock:           stock,
		ProductType:     p.ProductType,
		Category:        p.Category,
		PreviewVideoURL: p.PreviewVideoURL,
	}
}

// AdminProductCreate submits a new product. Validation failures re-render the
// form with the submitted values kept in place.
func (h *Handlers) AdminProductCreate(w http.ResponseWriter, r *http.Request) {
	form, cleanup, err := productFormFromRequest(r)
	if err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}
	defer cleanup()

	product, err := h.catalog.CreateProduct(r.Context(), token(r), form)
	if err != nil {
		h.renderProductFormError(w, r, "New product", nil, form, err)
		return
	}

	flash(r, "success", product.Name+" created.")
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// AdminProductUpdate submits edits to an existing product.
func (h *Handlers) AdminProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	form, cleanup, err := productFormFromRequest(r)
	if err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}
	defer cleanup()

	existing, fetchErr := h.catalog.Product(r.Context(), token(r), id)
	if fetchErr != nil {
		existing = nil
	}

	product, err := h.catalog.UpdateProduct(r.Context(), token(r), id, form)
	if err != nil {
		h.renderProductFormError(w, r, "Edit product", existing, form, err)
		return
	}

	flash(r, "success", product.Name+" updated.")
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *Handlers) renderProductFormError(w http.ResponseWriter, r *http.Request, title string, product *admincatalog.Product, form admincatalog.ProductForm, err error) {
	message := "The product could not be saved. Try again in a moment."
	var se *apiclient.StatusError
	if errors.As(err, &se) && se.StatusCode < 500 && se.Message != "" {
		message = se.Message
	} else {
		log.Printf("admincatalog: save product failed: %v", err)
	}

	data := h.productFormData(r, title)
	data.Product = product
	data.Form = form
	data.Error = message
	h.render(w, r, "admin_product_form", data)
}

// AdminProductArchive hides a product from the store.
func (h *Handlers) AdminProductArchive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	if err := h.catalog.ArchiveProduct(r.Context(), token(r), id); err != nil {
		log.Printf("admincatalog: archive product %d failed: %v", id, err)
		flash(r, "error", "The product could not be archived.")
	} else {
		flash(r, "success", "Product archived.")
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// AdminProductMediaDelete removes one gallery entry.
func (h *Handlers) AdminProductMediaDelete(w http.ResponseWriter, r *http.Request) {
	productID, mediaID, ok := mediaIDs(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	if err := h.catalog.DeleteMedia(r.Context(), token(r), productID, mediaID); err != nil {
		log.Printf("admincatalog: delete media %d/%d failed: %v", productID, mediaID, err)
		flash(r, "error", "The image could not be deleted.")
	} else {
		flash(r, "success", "Image deleted.")
	}
	http.Redirect(w, r, "/admin/products/"+strconv.Itoa(productID), http.StatusSeeOther)
}

// AdminProductMediaPrimary flags one gallery entry as the card image.
func (h *Handlers) AdminProductMediaPrimary(w http.ResponseWriter, r *http.Request) {
	productID, mediaID, ok := mediaIDs(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	if err := h.catalog.SetPrimaryMedia(r.Context(), token(r), productID, mediaID); err != nil {
		log.Printf("admincatalog: set primary media %d/%d failed: %v", productID, mediaID, err)
		flash(r, "error", "The image could not be made primary.")
	} else {
		flash(r, "success", "Primary image updated.")
	}
	http.Redirect(w, r, "/admin/products/"+strconv.Itoa(productID), http.StatusSeeOther)
}

func mediaIDs(r *http.Request) (productID, mediaID int, ok bool) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID <= 0 {
		return 0, 0, false
	}
	mediaID, err = strconv.Atoi(chi.URLParam(r, "mediaID"))
	if err != nil || mediaID <= 0 {
		return 0, 0, false
	}
	return productID, mediaID, true
}

// productFormFromRequest decodes the multipart product submission. The
// returned cleanup closes every opened upload and must run after the service
// call finishes.
func productFormFromRequest(r *http.Request) (admincatalog.ProductForm, func(), error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return admincatalog.ProductForm{}, func() {}, err
	}

	form := admincatalog.ProductForm{
		Name:            r.PostFormValue("name"),
		Description:     r.PostFormValue("description"),
		Price:           r.PostFormValue("price"),
		Stock:           r.PostFormValue("stock"),
		ProductType:     r.PostFormValue("product_type"),
		Category:        r.PostFormValue("category"),
		PreviewVideoURL: r.PostFormValue("preview_video_url"),
	}

	var open []multipart.File
	cleanup := func() {
		for _, f := range open {
			_ = f.Close()
		}
	}

	single := func(field string) (*admincatalog.FileUpload, error) {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		// Browsers submit an empty part when no file was chosen.
		if header.Filename == "" {
			_ = file.Close()
			return nil, nil
		}
		open = append(open, file)
		return &admincatalog.FileUpload{Filename: header.Filename, Content: file}, nil
	}

	var err error
	if form.Image, err = single("image"); err != nil {
		cleanup()
		return admincatalog.ProductForm{}, func() {}, err
	}
	if form.PreviewImage, err = single("preview_image"); err != nil {
		cleanup()
		return admincatalog.ProductForm{}, func() {}, err
	}
	if form.DownloadFile, err = single("download_file"); err != nil {
		cleanup()
		return admincatalog.ProductForm{}, func() {}, err
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["gallery_images"] {
			if header.Filename == "" {
				continue
			}
			file, err := header.Open()
			if err != nil {
				cleanup()
				return admincatalog.ProductForm{}, func() {}, err
			}
			open = append(open, file)
			form.GalleryImages = append(form.GalleryImages, admincatalog.FileUpload{
				Filename: header.Filename,
				Content:  file,
			})
		}
	}

	return form, cleanup, nil
}
