package storefront

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/menzofashion/menzo/internal/models"
)

// Checkout steps, strictly linear. Back-navigation to any earlier step keeps
// entered data; StepSuccess is terminal and reached only through PlaceOrder.
type Step int

const (
	StepAddress Step = iota
	StepShipping
	StepPayment
	StepReview
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepSuccess:
		return "success"
	}
	return "unknown"
}

// Shipping methods and their flat costs.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"

	standardCost = 99
	expressCost  = 199
)

var (
	ErrNotSignedIn       = errors.New("Please sign in to place an order.")
	ErrIncompleteAddress = errors.New("Please complete the shipping address.")
	ErrInvalidTransition = errors.New("checkout steps advance one at a time")
	ErrCheckoutComplete  = errors.New("checkout already completed")
	ErrEmptyCart         = errors.New("cart is empty")
	errSuccessViaAdvance = errors.New("success is reached by placing the order")
)

// Checkout drives the order flow over the cart and signed-in identity. The
// step is never persisted: a fresh Checkout restarts at the address step
// while the cart, stored separately, survives.
type Checkout struct {
	client *Client
	cart   *Cart
	auth   *Auth

	mu       sync.Mutex
	step     Step
	address  models.Address
	shipping string
	payment  string
	err      string
}

func NewCheckout(client *Client, cart *Cart, auth *Auth) *Checkout {
	return &Checkout{
		client:   client,
		cart:     cart,
		auth:     auth,
		step:     StepAddress,
		shipping: ShippingStandard,
		payment:  "cod",
	}
}

func (co *Checkout) Step() Step {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.step
}

func (co *Checkout) SetAddress(a models.Address) {
	co.mu.Lock()
	co.address = a
	co.mu.Unlock()
}

func (co *Checkout) SetShipping(method string) {
	co.mu.Lock()
	co.shipping = method
	co.mu.Unlock()
}

func (co *Checkout) SetPayment(method string) {
	co.mu.Lock()
	co.payment = method
	co.mu.Unlock()
}

// Advance moves exactly one step forward, up to the review step. The success
// step is entered only by PlaceOrder.
func (co *Checkout) Advance() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	switch co.step {
	case StepSuccess:
		return ErrCheckoutComplete
	case StepReview:
		return errSuccessViaAdvance
	default:
		co.step++
		return nil
	}
}

// Back returns to any earlier step without losing entered data.
func (co *Checkout) Back(to Step) error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.step == StepSuccess {
		return ErrCheckoutComplete
	}
	if to >= co.step {
		return ErrInvalidTransition
	}
	co.step = to
	return nil
}

// ShippingCost is the flat cost of the selected method; zero when the cart
// is empty.
func (co *Checkout) ShippingCost() float64 {
	if co.cart.Total() == 0 {
		return 0
	}
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.shipping == ShippingExpress {
		return expressCost
	}
	return standardCost
}

func (co *Checkout) Total() float64 {
	return co.cart.Total() + co.ShippingCost()
}

// PlaceOrder validates the preconditions (signed-in identity, complete
// address), posts the order and, on success, clears the cart and moves to
// the terminal step. Precondition failures never reach the network.
func (co *Checkout) PlaceOrder() (*models.Order, error) {
	user := co.auth.Current()
	if user == nil {
		co.setErr(ErrNotSignedIn.Error())
		return nil, ErrNotSignedIn
	}

	co.mu.Lock()
	addr := co.address
	shipping := co.shipping
	payment := co.payment
	co.mu.Unlock()

	if !addr.Complete() {
		co.setErr(ErrIncompleteAddress.Error())
		return nil, ErrIncompleteAddress
	}

	items := co.cart.Items()
	if len(items) == 0 {
		co.setErr(ErrEmptyCart.Error())
		return nil, ErrEmptyCart
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Size:      it.Size,
			Color:     it.Color,
		})
	}

	shippingAddress := fmt.Sprintf("%s, %s", addr.FullName, addr.Line1)
	if addr.Line2 != "" {
		shippingAddress += ", " + addr.Line2
	}
	shippingAddress += fmt.Sprintf(", %s, %s %s", addr.City, addr.State, addr.PostalCode)

	order := models.Order{
		ID:              fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		UserID:          user.Key(),
		CustomerName:    addr.FullName,
		Items:           orderItems,
		Total:           co.Total(),
		Status:          models.OrderStatusPending,
		ShippingAddress: shippingAddress,
		ShippingMethod:  shipping,
		PaymentMethod:   payment,
	}

	var created models.Order
	if err := co.client.Post("/orders", order, &created); err != nil {
		co.setErr(err.Error())
		return nil, err
	}

	co.cart.Clear()
	co.mu.Lock()
	co.step = StepSuccess
	co.err = ""
	co.mu.Unlock()
	return &created, nil
}

func (co *Checkout) Err() string {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.err
}

func (co *Checkout) setErr(msg string) {
	co.mu.Lock()
	co.err = msg
	co.mu.Unlock()
}
