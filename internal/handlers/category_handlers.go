package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/models"
	"github.com/menzofashion/menzo/internal/slugs"
	"github.com/menzofashion/menzo/internal/store"
	"go.uber.org/zap"
)

// GetAllCategories returns the flat category list.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	cats, err := h.Store.ListCategories(c.Request.Context())
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	c.JSON(http.StatusOK, cats)
}

// CreateCategory derives the slug from the name, rejects duplicates (by slug
// or case-insensitive name) and missing parents, then stores the category.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	ctx := c.Request.Context()
	cats, err := h.Store.ListCategories(ctx)
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slug := slugs.Make(name)
	for _, existing := range cats {
		if existing.Slug == slug || strings.EqualFold(existing.Name, name) {
			c.JSON(http.StatusConflict, gin.H{"message": "Category already exists"})
			return
		}
	}

	parentSlug := strings.TrimSpace(input.ParentSlug)
	if parentSlug != "" && !categoryExists(cats, parentSlug) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Parent category not found"})
		return
	}

	newCat := models.Category{Slug: slug, Name: name, ParentSlug: parentSlug}
	if err := h.Store.CreateCategory(ctx, &newCat); err != nil {
		h.Log.Error("create category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, newCat)
}

// UpdateCategory renames a category. The slug is re-derived from the new
// name, so a rename can change the primary key; callers are expected to walk
// product and offer references afterwards.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	currentSlug := c.Param("slug")

	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	ctx := c.Request.Context()
	cats, err := h.Store.ListCategories(ctx)
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !categoryExists(cats, currentSlug) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	nextSlug := slugs.Make(name)
	for _, existing := range cats {
		if existing.Slug == currentSlug {
			continue
		}
		if existing.Slug == nextSlug || strings.EqualFold(existing.Name, name) {
			c.JSON(http.StatusConflict, gin.H{"message": "Category already exists"})
			return
		}
	}

	parentSlug := strings.TrimSpace(input.ParentSlug)
	if parentSlug != "" {
		if parentSlug == currentSlug {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category cannot be its own parent"})
			return
		}
		if !categoryExists(cats, parentSlug) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Parent category not found"})
			return
		}
	}

	updated := models.Category{Slug: nextSlug, Name: name, ParentSlug: parentSlug}
	if err := h.Store.UpdateCategory(ctx, currentSlug, &updated); err != nil {
		h.Log.Error("update category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCategory refuses to delete a category that is still referenced by
// products, subcategories, or offers, reporting the blocking count.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	currentSlug := c.Param("slug")
	ctx := c.Request.Context()

	cats, err := h.Store.ListCategories(ctx)
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !categoryExists(cats, currentSlug) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	products, err := h.Store.ListProducts(ctx)
	if err != nil {
		h.Log.Error("list products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	linkedProducts := 0
	for _, p := range products {
		if p.Category == currentSlug {
			linkedProducts++
		}
	}
	if linkedProducts > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Cannot delete category: %d products are linked to it", linkedProducts)})
		return
	}

	subcategories := 0
	for _, cat := range cats {
		if cat.ParentSlug == currentSlug {
			subcategories++
		}
	}
	if subcategories > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Cannot delete category: %d subcategories exist under it", subcategories)})
		return
	}

	offers, err := h.Store.ListOffers(ctx)
	if err != nil {
		h.Log.Error("list offers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	linkedOffers := 0
	for _, o := range offers {
		if o.CategorySlug == currentSlug {
			linkedOffers++
		}
	}
	if linkedOffers > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Cannot delete category: %d offers are linked to it", linkedOffers)})
		return
	}

	if err := h.Store.DeleteCategory(ctx, currentSlug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		h.Log.Error("delete category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.Status(http.StatusNoContent)
}

func categoryExists(cats []models.Category, slug string) bool {
	for _, c := range cats {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
