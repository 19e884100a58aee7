package checkout

import (
	"errors"
	"time"

	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeDeliveryFee is returned when WithDeliveryFee gets a negative amount.
	ErrNegativeDeliveryFee = errors.New("delivery fee must not be negative")

	// ErrNoDeliveryOptions is returned when a delivery option list is empty.
	ErrNoDeliveryOptions = errors.New("delivery options must not be empty")

	// ErrNilClock is returned when WithClock gets a nil function.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNilTimezone is returned when WithTimezone gets a nil location.
	ErrNilTimezone = errors.New("timezone must not be nil")
)

var defaultDeliveryFee = decimal.NewFromInt(10)

var DefaultDeliveryLocations = []string{"VSU Main Campus", "Baybay City Proper", "Gaas", "Poblacion"}

var DefaultDeliveryTimes = []string{"9:00 AM", "10:00 AM", "1:00 PM", "3:00 PM", "5:00 PM"}

// Option defines a functional option for configuring a Flow.
type Option func(*Flow) error

// WithDeliveryFee sets the flat fee charged when the order is delivered.
// The amount is taken in the cart's currency.
func WithDeliveryFee(fee domain.Money) Option {
	return func(f *Flow) error {
		if fee.Amount.IsNegative() {
			return ErrNegativeDeliveryFee
		}
		f.deliveryFee = fee.Amount
		return nil
	}
}

func WithDeliveryLocations(locations []string) Option {
	return func(f *Flow) error {
		if len(locations) == 0 {
			return ErrNoDeliveryOptions
		}
		f.locations = append([]string(nil), locations...)
		return nil
	}
}

func WithDeliveryTimes(times []string) Option {
	return func(f *Flow) error {
		if len(times) == 0 {
			return ErrNoDeliveryOptions
		}
		f.times = append([]string(nil), times...)
		return nil
	}
}

// WithClock replaces time.Now, which decides what "today" is for delivery dates.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) error {
		if now == nil {
			return ErrNilClock
		}
		f.now = now
		return nil
	}
}

// WithTimezone sets the timezone in which calendar days are counted.
func WithTimezone(loc *time.Location) Option {
	return func(f *Flow) error {
		if loc == nil {
			return ErrNilTimezone
		}
		f.tz = loc
		return nil
	}
}
