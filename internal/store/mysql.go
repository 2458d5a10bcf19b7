package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/menzofashion/menzo/internal/models"
)

// SQL is the MySQL-backed store. List/Get/Create run plain statements;
// Patch reads the row, applies the partial update and writes the full row
// back inside a transaction.
type SQL struct {
	db *sql.DB
}

var _ Store = (*SQL)(nil)

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// --- Categories ---

func (s *SQL) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT slug, name, COALESCE(parent_slug, '') FROM categories ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Slug, &c.Name, &c.ParentSlug); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *SQL) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRowContext(ctx,
		"SELECT slug, name, COALESCE(parent_slug, '') FROM categories WHERE slug = ?", slug).
		Scan(&c.Slug, &c.Name, &c.ParentSlug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQL) CreateCategory(ctx context.Context, c *models.Category) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (slug, name, parent_slug, created_at) VALUES (?, ?, NULLIF(?, ''), NOW())",
		c.Slug, c.Name, c.ParentSlug)
	return err
}

func (s *SQL) UpdateCategory(ctx context.Context, slug string, c *models.Category) error {
	if _, err := s.GetCategory(ctx, slug); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE categories SET slug = ?, name = ?, parent_slug = NULLIF(?, '') WHERE slug = ?",
		c.Slug, c.Name, c.ParentSlug, slug)
	return err
}

func (s *SQL) DeleteCategory(ctx context.Context, slug string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE slug = ?", slug)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// --- Products ---

const productCols = "id, name, price, original_price, description, category, sizes, colors, image, stock, rating, reviews"

func scanProduct(scan func(dest ...any) error) (*models.Product, error) {
	var (
		p             models.Product
		sizes, colors []byte
		descr, image  sql.NullString
	)
	err := scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &descr, &p.Category,
		&sizes, &colors, &image, &p.Stock, &p.Rating, &p.Reviews)
	if err != nil {
		return nil, err
	}
	p.Description = descr.String
	p.Image = image.String
	if len(sizes) > 0 {
		_ = json.Unmarshal(sizes, &p.Sizes)
	}
	if len(colors) > 0 {
		_ = json.Unmarshal(colors, &p.Colors)
	}
	return &p, nil
}

func (s *SQL) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+productCols+" FROM products ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *SQL) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+productCols+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQL) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	sizes, _ := json.Marshal(p.Sizes)
	colors, _ := json.Marshal(p.Colors)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, price, original_price, description, category, sizes, colors, image, stock, rating, reviews, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		p.ID, p.Name, p.Price, p.OriginalPrice, p.Description, p.Category,
		sizes, colors, p.Image, p.Stock, p.Rating, p.Reviews)
	return err
}

func (s *SQL) PatchProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+productCols+" FROM products WHERE id = ? FOR UPDATE", id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	sizes, _ := json.Marshal(p.Sizes)
	colors, _ := json.Marshal(p.Colors)
	_, err = tx.ExecContext(ctx,
		`UPDATE products SET name = ?, price = ?, original_price = ?, description = ?, category = ?,
		 sizes = ?, colors = ?, image = ?, stock = ?, rating = ?, reviews = ? WHERE id = ?`,
		p.Name, p.Price, p.OriginalPrice, p.Description, p.Category,
		sizes, colors, p.Image, p.Stock, p.Rating, p.Reviews, id)
	if err != nil {
		return nil, err
	}
	return p, tx.Commit()
}

func (s *SQL) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// --- Offers ---

const offerCols = "id, title, subtitle, image, cta, COALESCE(product_id, ''), COALESCE(category_slug, ''), discount, active"

func scanOffer(scan func(dest ...any) error) (*models.Offer, error) {
	var (
		o                    models.Offer
		subtitle, image, cta sql.NullString
	)
	err := scan(&o.ID, &o.Title, &subtitle, &image, &cta, &o.ProductID, &o.CategorySlug, &o.Discount, &o.Active)
	if err != nil {
		return nil, err
	}
	o.Subtitle = subtitle.String
	o.Image = image.String
	o.CTA = cta.String
	return &o, nil
}

func (s *SQL) ListOffers(ctx context.Context) ([]models.Offer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+offerCols+" FROM offers ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

func (s *SQL) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+offerCols+" FROM offers WHERE id = ?", id)
	o, err := scanOffer(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *SQL) CreateOffer(ctx context.Context, o *models.Offer) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO offers (id, title, subtitle, image, cta, product_id, category_slug, discount, active, created_at)
		 VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, NOW())`,
		o.ID, o.Title, o.Subtitle, o.Image, o.CTA, o.ProductID, o.CategorySlug, o.Discount, o.Active)
	return err
}

func (s *SQL) PatchOffer(ctx context.Context, id string, patch models.OfferPatch) (*models.Offer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+offerCols+" FROM offers WHERE id = ? FOR UPDATE", id)
	o, err := scanOffer(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(o)
	_, err = tx.ExecContext(ctx,
		`UPDATE offers SET title = ?, subtitle = ?, image = ?, cta = ?, product_id = NULLIF(?, ''),
		 category_slug = NULLIF(?, ''), discount = ?, active = ? WHERE id = ?`,
		o.Title, o.Subtitle, o.Image, o.CTA, o.ProductID, o.CategorySlug, o.Discount, o.Active, id)
	if err != nil {
		return nil, err
	}
	return o, tx.Commit()
}

func (s *SQL) DeleteOffer(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM offers WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// --- Orders ---

const orderCols = "id, user_id, customer_name, items, total, status, shipping_address, shipping_method, payment_method, created_at, updated_at"

func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	var (
		o     models.Order
		items []byte
	)
	err := scan(&o.ID, &o.UserID, &o.CustomerName, &items, &o.Total, &o.Status,
		&o.ShippingAddress, &o.ShippingMethod, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		_ = json.Unmarshal(items, &o.Items)
	}
	return &o, nil
}

func (s *SQL) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+orderCols+" FROM orders ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (s *SQL) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+orderCols+" FROM orders WHERE id = ?", id)
	o, err := scanOrder(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *SQL) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = o.CreatedAt
	items, _ := json.Marshal(o.Items)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, customer_name, items, total, status, shipping_address, shipping_method, payment_method, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.UserID, o.CustomerName, items, o.Total, o.Status,
		o.ShippingAddress, o.ShippingMethod, o.PaymentMethod, o.CreatedAt, o.UpdatedAt)
	return err
}

func (s *SQL) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	// No rows-affected check here: MySQL reports zero affected rows when the
	// written values equal the current ones, and re-setting the same status
	// is a legal no-op. The read-back handles the missing-id case.
	_, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

func (s *SQL) DeleteOrder(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// --- Reviews ---

const reviewCols = "id, product_id, user_id, user_name, rating, title, text, date, helpful, verified"

func scanReview(scan func(dest ...any) error) (*models.Review, error) {
	var r models.Review
	err := scan(&r.ID, &r.ProductID, &r.UserID, &r.UserName, &r.Rating,
		&r.Title, &r.Text, &r.Date, &r.Helpful, &r.Verified)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQL) ListReviews(ctx context.Context) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+reviewCols+" FROM reviews ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		r, err := scanReview(rows.Scan)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *r)
	}
	return reviews, rows.Err()
}

func (s *SQL) GetReview(ctx context.Context, id string) (*models.Review, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+reviewCols+" FROM reviews WHERE id = ?", id)
	r, err := scanReview(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *SQL) CreateReview(ctx context.Context, r *models.Review) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reviews (id, product_id, user_id, user_name, rating, title, text, date, helpful, verified, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		r.ID, r.ProductID, r.UserID, r.UserName, r.Rating, r.Title, r.Text, r.Date, r.Helpful, r.Verified)
	return err
}

func (s *SQL) PutReview(ctx context.Context, r *models.Review) error {
	if _, err := s.GetReview(ctx, r.ID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE reviews SET product_id = ?, user_id = ?, user_name = ?, rating = ?, title = ?,
		 text = ?, date = ?, helpful = ?, verified = ? WHERE id = ?`,
		r.ProductID, r.UserID, r.UserName, r.Rating, r.Title, r.Text, r.Date, r.Helpful, r.Verified, r.ID)
	return err
}

func (s *SQL) DeleteReview(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// --- Coupons ---

func (s *SQL) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT code, discount_type, discount_value, min_amount, expiry_date, active FROM coupons ORDER BY code ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []models.Coupon
	for rows.Next() {
		var c models.Coupon
		if err := rows.Scan(&c.Code, &c.DiscountType, &c.DiscountValue, &c.MinAmount, &c.ExpiryDate, &c.Active); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (s *SQL) DeactivateExpiredCoupons(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE coupons SET active = FALSE WHERE active = TRUE AND expiry_date <= ?", now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// requireRows maps a zero-row write to ErrNotFound.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
