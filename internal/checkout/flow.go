// Package checkout implements the checkout form on top of a cart.
//
// A Flow collects payment and delivery choices, derives the delivery fee and
// total, and validates everything before an order is placed. Placing an order
// only requires an authenticated caller and ends with the cart cleared; nothing
// is sent to a payment or order backend.
package checkout

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// DateLayout is the wire format of delivery dates.
const DateLayout = time.DateOnly

// Cart is the part of cart.Store the flow depends on.
type Cart interface {
	Items() []domain.CartItem
	IsEmpty() bool
	Subtotal() domain.Money
	ItemCount() int
	Currency() currency.Unit
	Clear(ctx context.Context)
}

type Flow struct {
	cart     Cart
	identity port.IdentityProvider
	logger   *zap.Logger

	deliveryFee decimal.Decimal
	locations   []string
	times       []string
	now         func() time.Time
	tz          *time.Location

	mu               sync.Mutex
	paymentMethod    domain.PaymentMethod
	deliveryMethod   domain.DeliveryMethod
	deliveryLocation string
	deliveryDate     string
	deliveryTime     string
	placing          bool
	lastErr          *Error
	success          string
}

func NewFlow(cart Cart, identity port.IdentityProvider, logger *zap.Logger, opts ...Option) (*Flow, error) {
	f := &Flow{
		cart:        cart,
		identity:    identity,
		logger:      logger,
		deliveryFee: defaultDeliveryFee,
		locations:   DefaultDeliveryLocations,
		times:       DefaultDeliveryTimes,
		now:         time.Now,
		tz:          time.Local,
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// State is a read-only view of the checkout form.
type State struct {
	PaymentMethod    domain.PaymentMethod
	DeliveryMethod   domain.DeliveryMethod
	DeliveryLocation string
	DeliveryDate     string
	DeliveryTime     string

	ItemCount   int
	Subtotal    domain.Money
	DeliveryFee domain.Money
	Total       domain.Money

	DeliveryLocations []string
	DeliveryTimes     []string
	MinDeliveryDate   string

	Placing       bool
	CanPlaceOrder bool
	Error         string
	Success       string
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	subtotal := f.cart.Subtotal()
	fee := f.deliveryFeeLocked()

	s := State{
		PaymentMethod:     f.paymentMethod,
		DeliveryMethod:    f.deliveryMethod,
		DeliveryLocation:  f.deliveryLocation,
		DeliveryDate:      f.deliveryDate,
		DeliveryTime:      f.deliveryTime,
		ItemCount:         f.cart.ItemCount(),
		Subtotal:          subtotal,
		DeliveryFee:       fee,
		Total:             subtotal.Add(fee),
		DeliveryLocations: slices.Clone(f.locations),
		DeliveryTimes:     slices.Clone(f.times),
		MinDeliveryDate:   f.today().Format(DateLayout),
		Placing:           f.placing,
		CanPlaceOrder:     !f.placing && !f.cart.IsEmpty(),
		Success:           f.success,
	}
	if f.lastErr != nil {
		s.Error = f.lastErr.Message
	}

	return s
}

func (f *Flow) DeliveryFee() domain.Money {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.deliveryFeeLocked()
}

func (f *Flow) Total() domain.Money {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cart.Subtotal().Add(f.deliveryFeeLocked())
}

// SelectPaymentMethod sets the payment method; unknown methods unset it.
func (f *Flow) SelectPaymentMethod(m domain.PaymentMethod) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paymentMethod = domain.ParsePaymentMethod(string(m))
}

// SelectDeliveryMethod sets the delivery method. Leaving "deliver" always
// clears location, date and time.
func (f *Flow) SelectDeliveryMethod(m domain.DeliveryMethod) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deliveryMethod = domain.ParseDeliveryMethod(string(m))
	if f.deliveryMethod != domain.DeliveryMethodDeliver {
		f.clearDeliveryDetailsLocked()
	}
}

// SetDeliveryLocation accepts one of the configured locations, or "" to clear.
func (f *Flow) SetDeliveryLocation(location string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if location != "" && !slices.Contains(f.locations, location) {
		return ErrUnknownLocation
	}

	f.deliveryLocation = location
	return nil
}

// SetDeliveryTime accepts one of the configured time slots, or "" to clear.
func (f *Flow) SetDeliveryTime(slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if slot != "" && !slices.Contains(f.times, slot) {
		return ErrUnknownTime
	}

	f.deliveryTime = slot
	return nil
}

// SetDeliveryDate accepts a YYYY-MM-DD date not before today, or "" to clear.
func (f *Flow) SetDeliveryDate(date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if date != "" {
		if err := f.checkDateLocked(date); err != nil {
			return err
		}
	}

	f.deliveryDate = date
	return nil
}

// PlaceOrder validates the form and, for an authenticated caller, clears the
// cart and resets the form. Only the first failing check is reported.
func (f *Flow) PlaceOrder(ctx context.Context) (domain.Receipt, error) {
	f.mu.Lock()
	if f.placing {
		f.mu.Unlock()
		return domain.Receipt{}, ErrOrderInProgress
	}

	f.lastErr = nil
	f.success = ""

	if err := f.validateLocked(); err != nil {
		f.lastErr = err
		f.mu.Unlock()
		return domain.Receipt{}, err
	}

	f.placing = true
	f.mu.Unlock()

	user, err := f.currentUser(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.placing = false

	if err != nil {
		f.logger.Error("identity check failed", zap.Error(err))
		return domain.Receipt{}, f.fail(placeOrderFailed(err))
	}
	if user == nil {
		return domain.Receipt{}, f.fail(ErrLoginRequired)
	}

	// the form or the cart may have changed while the identity check ran
	if err := f.validateLocked(); err != nil {
		return domain.Receipt{}, f.fail(err)
	}

	receipt := f.receiptLocked(user)

	f.cart.Clear(ctx)
	f.paymentMethod = domain.PaymentMethodUnset
	f.deliveryMethod = domain.DeliveryMethodUnset
	f.clearDeliveryDetailsLocked()
	f.success = MsgOrderPlaced

	f.logger.Info("order placed",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("user_id", receipt.UserID),
		zap.Int("lines", len(receipt.Items)),
		zap.String("total", receipt.Total.String()),
		zap.String("payment_method", string(receipt.PaymentMethod)),
		zap.String("delivery_method", string(receipt.DeliveryMethod)))

	return receipt, nil
}

func (f *Flow) validateLocked() *Error {
	if f.cart.IsEmpty() {
		return ErrCartEmpty
	}
	if !f.paymentMethod.IsSet() {
		return ErrPaymentMethod
	}
	if !f.deliveryMethod.IsSet() {
		return ErrDeliveryMethod
	}

	if f.deliveryMethod == domain.DeliveryMethodDeliver {
		switch {
		case f.deliveryLocation == "":
			return ErrDeliveryLocation
		case f.deliveryDate == "":
			return ErrDeliveryDate
		case f.deliveryTime == "":
			return ErrDeliveryTime
		}

		// a date that was valid when picked goes stale overnight
		if err := f.checkDateLocked(f.deliveryDate); err != nil {
			return err
		}
	}

	return nil
}

func (f *Flow) checkDateLocked(date string) *Error {
	d, err := time.ParseInLocation(DateLayout, date, f.tz)
	if err != nil {
		return ErrDeliveryDateInvalid
	}
	if d.Before(f.today()) {
		return ErrDeliveryDatePast
	}
	return nil
}

// currentUser shields the flow from a panicking identity provider.
func (f *Flow) currentUser(ctx context.Context) (user *domain.User, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("identity provider panic: %v", r)
		}
	}()

	return f.identity.CurrentUser(ctx)
}

func (f *Flow) receiptLocked(user *domain.User) domain.Receipt {
	subtotal := f.cart.Subtotal()
	fee := f.deliveryFeeLocked()

	return domain.Receipt{
		ID:               uuid.New(),
		UserID:           user.ID,
		PlacedBy:         user.DisplayName(),
		Items:            f.cart.Items(),
		Subtotal:         subtotal,
		DeliveryFee:      fee,
		Total:            subtotal.Add(fee),
		PaymentMethod:    f.paymentMethod,
		DeliveryMethod:   f.deliveryMethod,
		DeliveryLocation: f.deliveryLocation,
		DeliveryDate:     f.deliveryDate,
		DeliveryTime:     f.deliveryTime,
		PlacedAt:         f.now(),
	}
}

func (f *Flow) fail(err *Error) *Error {
	f.lastErr = err
	return err
}

func (f *Flow) deliveryFeeLocked() domain.Money {
	cur := f.cart.Currency()
	if f.deliveryMethod != domain.DeliveryMethodDeliver {
		return domain.ZeroMoney(cur)
	}
	return domain.NewMoney(f.deliveryFee, cur)
}

func (f *Flow) clearDeliveryDetailsLocked() {
	f.deliveryLocation = ""
	f.deliveryDate = ""
	f.deliveryTime = ""
}

func (f *Flow) today() time.Time {
	now := f.now().In(f.tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.tz)
}
