package domain

type PaymentMethod string

const (
	PaymentMethodUnset          PaymentMethod = ""
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
	PaymentMethodMobileWallet   PaymentMethod = "gcash"
)

// ParsePaymentMethod maps unknown input to PaymentMethodUnset.
func ParsePaymentMethod(s string) PaymentMethod {
	switch m := PaymentMethod(s); m {
	case PaymentMethodCashOnDelivery, PaymentMethodMobileWallet:
		return m
	default:
		return PaymentMethodUnset
	}
}

func (m PaymentMethod) IsSet() bool {
	return m != PaymentMethodUnset
}

type DeliveryMethod string

const (
	DeliveryMethodUnset   DeliveryMethod = ""
	DeliveryMethodPickup  DeliveryMethod = "pickup"
	DeliveryMethodDeliver DeliveryMethod = "deliver"
)

// ParseDeliveryMethod maps unknown input to DeliveryMethodUnset.
func ParseDeliveryMethod(s string) DeliveryMethod {
	switch m := DeliveryMethod(s); m {
	case DeliveryMethodPickup, DeliveryMethodDeliver:
		return m
	default:
		return DeliveryMethodUnset
	}
}

func (m DeliveryMethod) IsSet() bool {
	return m != DeliveryMethodUnset
}
