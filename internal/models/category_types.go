package models

// Category defines a catalog category. The slug is the primary key and is
// derived from the name; ParentSlug links to another category's slug.
type Category struct {
	Slug       string `json:"slug" db:"slug"`
	Name       string `json:"name" db:"name"`
	ParentSlug string `json:"parentSlug,omitempty" db:"parent_slug"`
}

// CreateCategoryInput is the payload for POST/PUT /categories.
type CreateCategoryInput struct {
	Name       string `json:"name" binding:"required"`
	ParentSlug string `json:"parentSlug"`
}
