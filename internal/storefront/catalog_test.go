package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menzofashion/menzo/internal/models"
)

func TestCatalogRefreshMirrorsCollections(t *testing.T) {
	srv, mem := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateCategory(ctx, &models.Category{Slug: "men", Name: "Men"}))
	seedProducts(t, mem, models.Product{Name: "Bomber Jacket", Category: "men"})

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshAll()

	require.Len(t, catalog.Categories(), 1)
	require.Len(t, catalog.Products(), 1)
	assert.Empty(t, catalog.Err())
}

func TestCatalogRefreshKeepsStaleListOnFailure(t *testing.T) {
	srv, mem := newTestBackend(t)
	require.NoError(t, mem.CreateCategory(context.Background(), &models.Category{Slug: "men", Name: "Men"}))

	client := NewClient(srv.URL)
	catalog := NewCatalog(client)
	catalog.RefreshCategories()
	require.Len(t, catalog.Categories(), 1)

	srv.Close()
	catalog.RefreshCategories()

	assert.Len(t, catalog.Categories(), 1, "previous list survives the failed refresh")
	assert.NotEmpty(t, catalog.Err())
}

func TestCatalogLookups(t *testing.T) {
	srv, mem := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateCategory(ctx, &models.Category{Slug: "men", Name: "Men"}))
	require.NoError(t, mem.CreateCategory(ctx, &models.Category{Slug: "jackets", Name: "Jackets", ParentSlug: "men"}))
	require.NoError(t, mem.CreateCategory(ctx, &models.Category{Slug: "women", Name: "Women"}))
	seedProducts(t, mem,
		models.Product{Name: "Bomber Jacket", Category: "jackets"},
		models.Product{Name: "Denim Jacket", Category: "jackets"},
		models.Product{Name: "Summer Dress", Category: "women"},
	)
	require.NoError(t, mem.CreateOffer(ctx, &models.Offer{Title: "Jacket Sale", CategorySlug: "jackets", Active: true}))

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshAll()

	assert.Len(t, catalog.ProductsByCategory("jackets"), 2)
	assert.Len(t, catalog.OffersByCategory("jackets"), 1)
	assert.Len(t, catalog.Subcategories("men"), 1)
	assert.Len(t, catalog.TopLevelCategories(), 2)

	chain := catalog.CategoryHierarchy("jackets")
	require.Len(t, chain, 2)
	assert.Equal(t, "men", chain[0].Slug, "root first")
	assert.Equal(t, "jackets", chain[1].Slug)

	assert.False(t, catalog.CanDeleteCategory("men"), "blocked by its subcategory")
	assert.False(t, catalog.CanDeleteCategory("jackets"), "blocked by products and the offer")
	assert.False(t, catalog.CanDeleteCategory("women"), "blocked by a product")
	assert.True(t, catalog.CanDeleteCategory("unreferenced"), "nothing points at an unknown slug")

	assert.Nil(t, catalog.GetCategoryBySlug("missing"))
	assert.Nil(t, catalog.GetProductByID("missing"))
}

func TestCategoryHierarchyBrokenParentEndsWalk(t *testing.T) {
	srv, mem := newTestBackend(t)
	require.NoError(t, mem.CreateCategory(context.Background(), &models.Category{Slug: "jackets", Name: "Jackets", ParentSlug: "gone"}))

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshCategories()

	chain := catalog.CategoryHierarchy("jackets")
	require.Len(t, chain, 1, "unresolvable parent ends the chain silently")
	assert.Equal(t, "jackets", chain[0].Slug)
}

func TestAddCategoryValidatesBeforeNetwork(t *testing.T) {
	srv, _ := newTestBackend(t)
	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshCategories()

	assert.Nil(t, catalog.AddCategory("   ", ""))
	assert.Equal(t, "Category name is required", catalog.Err())

	assert.Nil(t, catalog.AddCategory("Jackets", "missing-parent"))
	assert.Equal(t, "Parent category not found", catalog.Err())

	created := catalog.AddCategory("Jackets", "")
	require.NotNil(t, created)
	assert.Equal(t, "jackets", created.Slug)
	assert.Empty(t, catalog.Err())

	assert.Nil(t, catalog.AddCategory("JACKETS", ""))
	assert.Equal(t, "Category already exists", catalog.Err())
}

func TestDeleteCategoryBlockedThenAllowed(t *testing.T) {
	srv, mem := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateCategory(ctx, &models.Category{Slug: "jackets", Name: "Jackets"}))
	p := models.Product{Name: "Bomber Jacket", Category: "jackets"}
	require.NoError(t, mem.CreateProduct(ctx, &p))

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshAll()

	assert.False(t, catalog.CanDeleteCategory("jackets"))
	assert.False(t, catalog.DeleteCategory("jackets"))
	assert.Equal(t, "Cannot delete category: 1 linked products, subcategories, or offers", catalog.Err())

	require.True(t, catalog.DeleteProduct(p.ID))
	assert.True(t, catalog.CanDeleteCategory("jackets"))
	assert.True(t, catalog.DeleteCategory("jackets"))
	assert.Empty(t, catalog.Categories())
}

func TestRenameCategoryCascadesReferences(t *testing.T) {
	srv, mem := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateCategory(ctx, &models.Category{Slug: "jackets", Name: "Jackets"}))
	p := models.Product{Name: "Bomber Jacket", Category: "jackets"}
	require.NoError(t, mem.CreateProduct(ctx, &p))
	o := models.Offer{Title: "Jacket Sale", CategorySlug: "jackets", Active: true}
	require.NoError(t, mem.CreateOffer(ctx, &o))

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshAll()

	updated := catalog.UpdateCategory("jackets", "Winter Jackets", "")
	require.NotNil(t, updated)
	assert.Equal(t, "winter-jackets", updated.Slug)

	got := catalog.GetProductByID(p.ID)
	require.NotNil(t, got)
	assert.Equal(t, "winter-jackets", got.Category, "product reference follows the rename")

	offers := catalog.OffersByCategory("winter-jackets")
	require.Len(t, offers, 1)
	assert.Equal(t, o.ID, offers[0].ID, "offer reference follows the rename")
	assert.Empty(t, catalog.OffersByCategory("jackets"))
}

func TestUpdateCategorySelfParentRejectedLocally(t *testing.T) {
	srv, mem := newTestBackend(t)
	require.NoError(t, mem.CreateCategory(context.Background(), &models.Category{Slug: "jackets", Name: "Jackets"}))

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshCategories()

	assert.Nil(t, catalog.UpdateCategory("jackets", "Jackets", "jackets"))
	assert.Equal(t, "Category cannot be its own parent", catalog.Err())
}

func TestDeleteProductDetachesOffers(t *testing.T) {
	srv, mem := newTestBackend(t)
	ctx := context.Background()

	p := models.Product{Name: "Bomber Jacket", Category: "jackets"}
	require.NoError(t, mem.CreateProduct(ctx, &p))
	o := models.Offer{Title: "Flash Sale", ProductID: p.ID, Active: true}
	require.NoError(t, mem.CreateOffer(ctx, &o))

	catalog := NewCatalog(NewClient(srv.URL))
	catalog.RefreshAll()

	require.True(t, catalog.DeleteProduct(p.ID))

	assert.Empty(t, catalog.Products())
	offers := catalog.Offers()
	require.Len(t, offers, 1, "the offer survives the product")
	assert.Empty(t, offers[0].ProductID, "but no longer points at it")
}

func TestUpdateOrderStatusRequiresUnlock(t *testing.T) {
	srv, mem := newTestBackend(t)
	ctx := context.Background()

	order := models.Order{
		UserID: "a@b.c",
		Items:  []models.OrderItem{{ProductID: "p1", Quantity: 1, Price: 10}},
		Status: models.OrderStatusPending,
	}
	require.NoError(t, mem.CreateOrder(ctx, &order))

	client := NewClient(srv.URL)
	catalog := NewCatalog(client)
	catalog.RefreshOrders()

	assert.Nil(t, catalog.UpdateOrderStatus(order.ID, models.OrderStatusShipped), "guarded route rejects without a token")
	assert.NotEmpty(t, catalog.Err())

	gate := NewAdminGate(client, nil)
	require.NoError(t, gate.Unlock("Priya123@at"))

	updated := catalog.UpdateOrderStatus(order.ID, models.OrderStatusShipped)
	require.NotNil(t, updated)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	assert.True(t, catalog.DeleteOrder(order.ID))
	assert.Empty(t, catalog.Orders())
}
