package storefront

// Session is the composition root of the storefront: one client, one local
// store, and every engine wired over them. It corresponds to what the app
// shell builds at startup before the first render.
type Session struct {
	Client  *Client
	Local   *LocalStore
	Catalog *Catalog
	Cart    *Cart

	Wishlist    *Wishlist
	Recommender *Recommender
	Reviews     *Reviews
	Search      *Search
	Coupons     *CouponBook
	Auth        *Auth
	Admin       *AdminGate
	Notifier    *Notifier
	Prefs       *Prefs
}

// NewSession opens the local store at localPath and wires the engines
// against the REST base URL. Nothing is fetched yet; call Bootstrap for the
// initial load.
func NewSession(baseURL, localPath string) (*Session, error) {
	local, err := OpenLocalStore(localPath)
	if err != nil {
		return nil, err
	}

	client := NewClient(baseURL)
	s := &Session{
		Client:      client,
		Local:       local,
		Catalog:     NewCatalog(client),
		Cart:        NewCart(local),
		Wishlist:    NewWishlist(local),
		Recommender: NewRecommender(local),
		Reviews:     NewReviews(client),
		Search:      NewSearch(client, local),
		Coupons:     NewCouponBook(client),
		Auth:        NewAuth(local),
		Admin:       NewAdminGate(client, local),
		Notifier:    NewNotifier(),
		Prefs:       NewPrefs(local),
	}
	return s, nil
}

// Bootstrap performs the initial load: all entity caches, reviews and
// usable coupons. Failures land in the per-cache error slots rather than
// aborting.
func (s *Session) Bootstrap() {
	s.Catalog.RefreshAll()
	s.Reviews.Refresh()
	s.Coupons.Refresh()
}

// NewCheckout starts a fresh checkout over the session's cart and identity.
func (s *Session) NewCheckout() *Checkout {
	return NewCheckout(s.Client, s.Cart, s.Auth)
}

func (s *Session) Close() error {
	return s.Local.Close()
}
