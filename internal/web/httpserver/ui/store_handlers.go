package ui

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devil2devil.org/economy-web/internal/web/paging"
	"devil2devil.org/economy-web/internal/web/store"
	"devil2devil.org/economy-web/internal/web/templates"
)

type storeData struct {
	templates.BaseData
	Products       []store.Product
	Categories     []store.Category
	ActiveCategory string
	Page           paging.Page
}

// StorePage renders the product grid with category tabs and pagination. The
// whole catalog is fetched once and sliced here.
func (h *Handlers) StorePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.store.Products(ctx)
	if err != nil {
		log.Printf("store: list products failed: %v", err)
		h.RenderError(w, r, "The store could not be loaded. Try again in a moment.")
		return
	}

	categories, err := h.store.Categories(ctx)
	if err != nil {
		// Tabs are decoration; the grid still renders without them.
		log.Printf("store: list categories failed: %v", err)
		categories = nil
	}

	active := r.URL.Query().Get("category")
	filtered := products
	if active != "" {
		filtered = make([]store.Product, 0, len(products))
		for _, p := range products {
			if p.Category == active {
				filtered = append(filtered, p)
			}
		}
	}

	requested, _ := strconv.Atoi(r.URL.Query().Get("page"))
	page := paging.Paginate(len(filtered), paging.StorePageSize, requested)

	h.render(w, r, "store", storeData{
		BaseData:       h.base(r, "Store"),
		Products:       filtered[page.Start:page.End],
		Categories:     categories,
		ActiveCategory: active,
		Page:           page,
	})
}

type productData struct {
	templates.BaseData
	Product *store.Product
	Result  *store.PurchaseResult
}

// ProductPage renders one product with its media gallery.
func (h *Handlers) ProductPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		// Unknown product slugs land on the intro page, not an error.
		h.Landing(w, r)
		return
	}

	product, err := h.store.Product(r.Context(), id)
	if errors.Is(err, store.ErrProductNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("store: fetch product %d failed: %v", id, err)
		h.RenderError(w, r, "The product could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "product", productData{
		BaseData: h.base(r, product.Name),
		Product:  product,
	})
}

// PurchaseSubmit spends the visitor's points on a product and redirects back
// to the detail page with the outcome as a flash.
func (h *Handlers) PurchaseSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	result, err := h.store.Purchase(r.Context(), token(r), id)
	if errors.Is(err, store.ErrProductNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("store: purchase product %d failed: %v", id, err)
		flash(r, "error", "The purchase could not be completed. Try again in a moment.")
		http.Redirect(w, r, "/product/"+strconv.Itoa(id), http.StatusSeeOther)
		return
	}

	if result.OK {
		flash(r, "success", result.Message)
	} else {
		flash(r, "error", result.Message)
	}
	http.Redirect(w, r, "/product/"+strconv.Itoa(id), http.StatusSeeOther)
}
