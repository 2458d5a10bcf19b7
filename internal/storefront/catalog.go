package storefront

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/menzofashion/menzo/internal/models"
	"github.com/menzofashion/menzo/internal/slugs"
)

// cache is an in-memory ordered mirror of one remote collection. The error
// slot holds the last failure message; refreshes never raise.
type cache[T any] struct {
	items []T
	err   string
}

// refreshCache fetches the full collection and replaces the list wholesale.
// Network failures land in the error slot with a distinguished message for
// timeouts; the previous list is kept so the UI degrades to a stale view.
func refreshCache[T any](c *Client, path, label string, dst *cache[T]) {
	var items []T
	if err := c.Get(path, &items); err != nil {
		if errors.Is(err, errTimedOut) {
			dst.err = label + " request timed out"
		} else {
			dst.err = err.Error()
		}
		return
	}
	dst.items = items
	dst.err = ""
}

// Catalog mirrors the server-authoritative collections (categories, products,
// offers, orders) and funnels every mutation through write-then-refresh.
// Mutations return nil (or false) on failure with the reason in the error
// slot; callers check the sentinel, nothing is thrown.
type Catalog struct {
	client *Client

	mu         sync.RWMutex
	categories cache[models.Category]
	products   cache[models.Product]
	offers     cache[models.Offer]
	orders     cache[models.Order]
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// --- Refresh ---

func (a *Catalog) RefreshCategories() {
	a.mu.Lock()
	defer a.mu.Unlock()
	refreshCache(a.client, "/categories", "Category", &a.categories)
}

func (a *Catalog) RefreshProducts() {
	a.mu.Lock()
	defer a.mu.Unlock()
	refreshCache(a.client, "/products", "Product", &a.products)
}

func (a *Catalog) RefreshOffers() {
	a.mu.Lock()
	defer a.mu.Unlock()
	refreshCache(a.client, "/offers", "Offer", &a.offers)
}

func (a *Catalog) RefreshOrders() {
	a.mu.Lock()
	defer a.mu.Unlock()
	refreshCache(a.client, "/orders", "Order", &a.orders)
}

func (a *Catalog) RefreshAll() {
	a.RefreshCategories()
	a.RefreshProducts()
	a.RefreshOffers()
	a.RefreshOrders()
}

// --- Snapshots and error slots ---

func (a *Catalog) Categories() []models.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.Category, len(a.categories.items))
	copy(out, a.categories.items)
	return out
}

func (a *Catalog) Products() []models.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.Product, len(a.products.items))
	copy(out, a.products.items)
	return out
}

func (a *Catalog) Offers() []models.Offer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.Offer, len(a.offers.items))
	copy(out, a.offers.items)
	return out
}

func (a *Catalog) Orders() []models.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.Order, len(a.orders.items))
	copy(out, a.orders.items)
	return out
}

// Err returns the first non-empty cache error slot.
func (a *Catalog) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, e := range []string{a.categories.err, a.products.err, a.offers.err, a.orders.err} {
		if e != "" {
			return e
		}
	}
	return ""
}

func (a *Catalog) setCategoryErr(msg string) {
	a.mu.Lock()
	a.categories.err = msg
	a.mu.Unlock()
}

// --- Lookups (pure functions over the in-memory lists) ---

func (a *Catalog) GetCategoryBySlug(slug string) *models.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return findCategory(a.categories.items, slug)
}

func findCategory(cats []models.Category, slug string) *models.Category {
	for _, c := range cats {
		if c.Slug == slug {
			cp := c
			return &cp
		}
	}
	return nil
}

func (a *Catalog) GetProductByID(id string) *models.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.products.items {
		if p.ID == id {
			cp := p
			return &cp
		}
	}
	return nil
}

func (a *Catalog) ProductsByCategory(slug string) []models.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []models.Product
	for _, p := range a.products.items {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

func (a *Catalog) OffersByCategory(slug string) []models.Offer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []models.Offer
	for _, o := range a.offers.items {
		if o.CategorySlug == slug {
			out = append(out, o)
		}
	}
	return out
}

func (a *Catalog) OffersByProduct(productID string) []models.Offer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []models.Offer
	for _, o := range a.offers.items {
		if o.ProductID == productID {
			out = append(out, o)
		}
	}
	return out
}

func (a *Catalog) Subcategories(parentSlug string) []models.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []models.Category
	for _, c := range a.categories.items {
		if c.ParentSlug == parentSlug {
			out = append(out, c)
		}
	}
	return out
}

func (a *Catalog) TopLevelCategories() []models.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []models.Category
	for _, c := range a.categories.items {
		if c.ParentSlug == "" {
			out = append(out, c)
		}
	}
	return out
}

// CategoryHierarchy resolves the ancestor chain from the root down to slug,
// prepending each parent. A parentSlug that does not resolve ends the walk
// silently. The iteration cap guards against reference cycles, which nothing
// upstream prevents beyond the direct self-parent check.
func (a *Catalog) CategoryHierarchy(slug string) []models.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()

	current := findCategory(a.categories.items, slug)
	if current == nil {
		return nil
	}
	chain := []models.Category{*current}
	for range a.categories.items {
		if current.ParentSlug == "" {
			break
		}
		parent := findCategory(a.categories.items, current.ParentSlug)
		if parent == nil {
			break
		}
		chain = append([]models.Category{*parent}, chain...)
		current = parent
	}
	return chain
}

// CanDeleteCategory is true iff nothing references the slug: no product's
// category, no category's parentSlug, no offer's categorySlug.
func (a *Catalog) CanDeleteCategory(slug string) bool {
	return a.blockingReferences(slug) == 0
}

func (a *Catalog) blockingReferences(slug string) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n := 0
	for _, p := range a.products.items {
		if p.Category == slug {
			n++
		}
	}
	for _, c := range a.categories.items {
		if c.ParentSlug == slug {
			n++
		}
	}
	for _, o := range a.offers.items {
		if o.CategorySlug == slug {
			n++
		}
	}
	return n
}

// --- Category CRUD ---

// AddCategory validates client-side before any network call: required name,
// duplicate slug or case-insensitive name, missing parent.
func (a *Catalog) AddCategory(name, parentSlug string) *models.Category {
	name = strings.TrimSpace(name)
	if name == "" {
		a.setCategoryErr("Category name is required")
		return nil
	}

	slug := slugs.Make(name)
	cats := a.Categories()
	for _, existing := range cats {
		if existing.Slug == slug || strings.EqualFold(existing.Name, name) {
			a.setCategoryErr("Category already exists")
			return nil
		}
	}
	if parentSlug != "" && findCategory(cats, parentSlug) == nil {
		a.setCategoryErr("Parent category not found")
		return nil
	}

	var created models.Category
	err := a.client.Post("/categories", models.CreateCategoryInput{Name: name, ParentSlug: parentSlug}, &created)
	if err != nil {
		a.setCategoryErr(err.Error())
		return nil
	}
	a.RefreshCategories()
	return &created
}

// UpdateCategory renames a category and, when the derived slug changes,
// walks every product and offer referencing the old slug and patches it to
// the new one. The reference walk is a sequence of independent calls with no
// rollback; a partial failure can leave dangling references until retried.
func (a *Catalog) UpdateCategory(slug, newName, newParentSlug string) *models.Category {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		a.setCategoryErr("Category name is required")
		return nil
	}

	cats := a.Categories()
	if findCategory(cats, slug) == nil {
		a.setCategoryErr("Category not found")
		return nil
	}

	nextSlug := slugs.Make(newName)
	for _, existing := range cats {
		if existing.Slug == slug {
			continue
		}
		if existing.Slug == nextSlug || strings.EqualFold(existing.Name, newName) {
			a.setCategoryErr("Category already exists")
			return nil
		}
	}
	if newParentSlug != "" {
		if newParentSlug == slug {
			a.setCategoryErr("Category cannot be its own parent")
			return nil
		}
		if findCategory(cats, newParentSlug) == nil {
			a.setCategoryErr("Parent category not found")
			return nil
		}
	}

	var updated models.Category
	err := a.client.Put("/categories/"+url.PathEscape(slug),
		models.CreateCategoryInput{Name: newName, ParentSlug: newParentSlug}, &updated)
	if err != nil {
		a.setCategoryErr(err.Error())
		return nil
	}

	if updated.Slug != slug {
		for _, p := range a.Products() {
			if p.Category != slug {
				continue
			}
			newSlug := updated.Slug
			patch := models.ProductPatch{Category: &newSlug}
			if err := a.client.Patch("/products/"+url.PathEscape(p.ID), patch, nil); err != nil {
				a.setCategoryErr(err.Error())
			}
		}
		for _, o := range a.Offers() {
			if o.CategorySlug != slug {
				continue
			}
			payload := map[string]string{"categorySlug": updated.Slug}
			if err := a.client.Patch("/offers/"+url.PathEscape(o.ID), payload, nil); err != nil {
				a.setCategoryErr(err.Error())
			}
		}
	}

	a.RefreshAll()
	return &updated
}

// DeleteCategory pre-flights the referential gate and refuses with the count
// of blocking references; the server re-checks as defense in depth.
func (a *Catalog) DeleteCategory(slug string) bool {
	if n := a.blockingReferences(slug); n > 0 {
		a.setCategoryErr(fmt.Sprintf("Cannot delete category: %d linked products, subcategories, or offers", n))
		return false
	}

	if err := a.client.Delete("/categories/" + url.PathEscape(slug)); err != nil {
		a.setCategoryErr(err.Error())
		return false
	}
	a.RefreshCategories()
	return true
}

// --- Product CRUD ---

func (a *Catalog) AddProduct(p models.Product) *models.Product {
	p.ID = ""
	var created models.Product
	if err := a.client.Post("/products", p, &created); err != nil {
		a.mu.Lock()
		a.products.err = err.Error()
		a.mu.Unlock()
		return nil
	}
	a.RefreshProducts()
	return &created
}

func (a *Catalog) UpdateProduct(id string, patch models.ProductPatch) *models.Product {
	var updated models.Product
	if err := a.client.Patch("/products/"+url.PathEscape(id), patch, &updated); err != nil {
		a.mu.Lock()
		a.products.err = err.Error()
		a.mu.Unlock()
		return nil
	}
	a.RefreshProducts()
	return &updated
}

// DeleteProduct first detaches the product from any offer referencing it,
// then deletes the record.
func (a *Catalog) DeleteProduct(id string) bool {
	for _, o := range a.Offers() {
		if o.ProductID != id {
			continue
		}
		payload := map[string]any{"productId": nil}
		if err := a.client.Patch("/offers/"+url.PathEscape(o.ID), payload, nil); err != nil {
			a.mu.Lock()
			a.offers.err = err.Error()
			a.mu.Unlock()
		}
	}

	if err := a.client.Delete("/products/" + url.PathEscape(id)); err != nil {
		a.mu.Lock()
		a.products.err = err.Error()
		a.mu.Unlock()
		return false
	}
	a.RefreshAll()
	return true
}

// --- Offer CRUD ---

func (a *Catalog) AddOffer(o models.Offer) *models.Offer {
	o.ID = ""
	var created models.Offer
	if err := a.client.Post("/offers", o, &created); err != nil {
		a.mu.Lock()
		a.offers.err = err.Error()
		a.mu.Unlock()
		return nil
	}
	a.RefreshOffers()
	return &created
}

func (a *Catalog) UpdateOffer(id string, patch models.OfferPatch) *models.Offer {
	var updated models.Offer
	if err := a.client.Patch("/offers/"+url.PathEscape(id), patch, &updated); err != nil {
		a.mu.Lock()
		a.offers.err = err.Error()
		a.mu.Unlock()
		return nil
	}
	a.RefreshOffers()
	return &updated
}

func (a *Catalog) DeleteOffer(id string) bool {
	if err := a.client.Delete("/offers/" + url.PathEscape(id)); err != nil {
		a.mu.Lock()
		a.offers.err = err.Error()
		a.mu.Unlock()
		return false
	}
	a.RefreshOffers()
	return true
}

// --- Order management ---

func (a *Catalog) UpdateOrderStatus(id, status string) *models.Order {
	var updated models.Order
	payload := models.OrderStatusInput{Status: status}
	if err := a.client.Patch("/orders/"+url.PathEscape(id), payload, &updated); err != nil {
		a.mu.Lock()
		a.orders.err = err.Error()
		a.mu.Unlock()
		return nil
	}
	a.RefreshOrders()
	return &updated
}

func (a *Catalog) DeleteOrder(id string) bool {
	if err := a.client.Delete("/orders/" + url.PathEscape(id)); err != nil {
		a.mu.Lock()
		a.orders.err = err.Error()
		a.mu.Unlock()
		return false
	}
	a.RefreshOrders()
	return true
}
