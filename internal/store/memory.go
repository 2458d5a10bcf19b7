package store

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/menzofashion/menzo/internal/models"
)

// Snapshot is the on-disk shape of the memory store, compatible with a
// db.json-style seed file: one array per collection.
type Snapshot struct {
	Categories []models.Category `json:"categories"`
	Products   []models.Product  `json:"products"`
	Offers     []models.Offer    `json:"offers"`
	Orders     []models.Order    `json:"orders"`
	Reviews    []models.Review   `json:"reviews"`
	Coupons    []models.Coupon   `json:"coupons"`
}

// Memory is a mutex-guarded in-memory store. Collections are kept as ordered
// slices so list responses preserve insertion order. When a seed file is
// configured, every mutation writes the whole snapshot back to it.
type Memory struct {
	mu       sync.RWMutex
	data     Snapshot
	seedFile string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryFromFile loads a snapshot from path and keeps persisting to it.
// A missing or unreadable file starts the store empty.
func NewMemoryFromFile(path string) (*Memory, error) {
	m := &Memory{seedFile: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &m.data); err != nil {
		return nil, err
	}
	return m, nil
}

// persist writes the snapshot to the seed file. Best effort: the in-memory
// state is authoritative within the process lifetime.
func (m *Memory) persist() {
	if m.seedFile == "" {
		return
	}
	raw, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(m.seedFile, raw, 0o644)
}

// --- Categories ---

func (m *Memory) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Category, len(m.data.Categories))
	copy(out, m.data.Categories)
	return out, nil
}

func (m *Memory) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.data.Categories {
		if c.Slug == slug {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateCategory(ctx context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data.Categories = append(m.data.Categories, *c)
	m.persist()
	return nil
}

func (m *Memory) UpdateCategory(ctx context.Context, slug string, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Categories {
		if m.data.Categories[i].Slug == slug {
			m.data.Categories[i] = *c
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteCategory(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Categories {
		if m.data.Categories[i].Slug == slug {
			m.data.Categories = append(m.data.Categories[:i], m.data.Categories[i+1:]...)
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

// --- Products ---

func (m *Memory) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.data.Products))
	copy(out, m.data.Products)
	return out, nil
}

func (m *Memory) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.data.Products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.data.Products = append(m.data.Products, *p)
	m.persist()
	return nil
}

func (m *Memory) PatchProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Products {
		if m.data.Products[i].ID == id {
			patch.Apply(&m.data.Products[i])
			cp := m.data.Products[i]
			m.persist()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Products {
		if m.data.Products[i].ID == id {
			m.data.Products = append(m.data.Products[:i], m.data.Products[i+1:]...)
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

// --- Offers ---

func (m *Memory) ListOffers(ctx context.Context) ([]models.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Offer, len(m.data.Offers))
	copy(out, m.data.Offers)
	return out, nil
}

func (m *Memory) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.data.Offers {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateOffer(ctx context.Context, o *models.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	m.data.Offers = append(m.data.Offers, *o)
	m.persist()
	return nil
}

func (m *Memory) PatchOffer(ctx context.Context, id string, patch models.OfferPatch) (*models.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Offers {
		if m.data.Offers[i].ID == id {
			patch.Apply(&m.data.Offers[i])
			cp := m.data.Offers[i]
			m.persist()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteOffer(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Offers {
		if m.data.Offers[i].ID == id {
			m.data.Offers = append(m.data.Offers[:i], m.data.Offers[i+1:]...)
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

// --- Orders ---

func (m *Memory) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, len(m.data.Orders))
	copy(out, m.data.Orders)
	return out, nil
}

func (m *Memory) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.data.Orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateOrder(ctx context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = o.CreatedAt
	m.data.Orders = append(m.data.Orders, *o)
	m.persist()
	return nil
}

func (m *Memory) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Orders {
		if m.data.Orders[i].ID == id {
			m.data.Orders[i].Status = status
			m.data.Orders[i].UpdatedAt = time.Now().UTC()
			cp := m.data.Orders[i]
			m.persist()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteOrder(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Orders {
		if m.data.Orders[i].ID == id {
			m.data.Orders = append(m.data.Orders[:i], m.data.Orders[i+1:]...)
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

// --- Reviews ---

func (m *Memory) ListReviews(ctx context.Context) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Review, len(m.data.Reviews))
	copy(out, m.data.Reviews)
	return out, nil
}

func (m *Memory) GetReview(ctx context.Context, id string) (*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.data.Reviews {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateReview(ctx context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m.data.Reviews = append(m.data.Reviews, *r)
	m.persist()
	return nil
}

func (m *Memory) PutReview(ctx context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Reviews {
		if m.data.Reviews[i].ID == r.ID {
			m.data.Reviews[i] = *r
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteReview(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data.Reviews {
		if m.data.Reviews[i].ID == id {
			m.data.Reviews = append(m.data.Reviews[:i], m.data.Reviews[i+1:]...)
			m.persist()
			return nil
		}
	}
	return ErrNotFound
}

// --- Coupons ---

func (m *Memory) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Coupon, len(m.data.Coupons))
	copy(out, m.data.Coupons)
	return out, nil
}

func (m *Memory) SeedCoupons(coupons []models.Coupon) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data.Coupons = append(m.data.Coupons, coupons...)
	m.persist()
}

func (m *Memory) DeactivateExpiredCoupons(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for i := range m.data.Coupons {
		if m.data.Coupons[i].Active && m.data.Coupons[i].Expired(now) {
			m.data.Coupons[i].Active = false
			n++
		}
	}
	if n > 0 {
		m.persist()
	}
	return n, nil
}
