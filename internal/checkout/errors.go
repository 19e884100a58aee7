package checkout

type Kind int

const (
	KindValidation Kind = iota
	KindAuthRequired
	KindBusy
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindAuthRequired:
		return "AUTH_REQUIRED"
	case KindBusy:
		return "BUSY"
	case KindUnexpected:
		return "UNEXPECTED"
	default:
		return "UNKNOWN"
	}
}

// Messages shown to the shopper. One is reported per attempt.
const (
	ErrMsgCartEmpty           = "Your cart is empty."
	ErrMsgPaymentMethod       = "Please choose a payment method."
	ErrMsgDeliveryMethod      = "Please choose a delivery method."
	ErrMsgDeliveryLocation    = "Please choose a delivery location."
	ErrMsgDeliveryDate        = "Please choose a delivery date."
	ErrMsgDeliveryTime        = "Please choose a delivery time."
	ErrMsgDeliveryDatePast    = "Delivery date cannot be in the past."
	ErrMsgDeliveryDateInvalid = "Delivery date must be a valid date (YYYY-MM-DD)."
	ErrMsgUnknownLocation     = "Please choose a delivery location from the list."
	ErrMsgUnknownTime         = "Please choose a delivery time from the list."
	ErrMsgLoginRequired       = "Please log in before placing an order."
	ErrMsgOrderInProgress     = "An order is already being placed."
	ErrMsgPlaceOrderFailed    = "Failed to place order."
	MsgOrderPlaced            = "Order placed successfully!"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrCartEmpty           = &Error{Kind: KindValidation, Message: ErrMsgCartEmpty}
	ErrPaymentMethod       = &Error{Kind: KindValidation, Message: ErrMsgPaymentMethod}
	ErrDeliveryMethod      = &Error{Kind: KindValidation, Message: ErrMsgDeliveryMethod}
	ErrDeliveryLocation    = &Error{Kind: KindValidation, Message: ErrMsgDeliveryLocation}
	ErrDeliveryDate        = &Error{Kind: KindValidation, Message: ErrMsgDeliveryDate}
	ErrDeliveryTime        = &Error{Kind: KindValidation, Message: ErrMsgDeliveryTime}
	ErrDeliveryDatePast    = &Error{Kind: KindValidation, Message: ErrMsgDeliveryDatePast}
	ErrDeliveryDateInvalid = &Error{Kind: KindValidation, Message: ErrMsgDeliveryDateInvalid}
	ErrUnknownLocation     = &Error{Kind: KindValidation, Message: ErrMsgUnknownLocation}
	ErrUnknownTime         = &Error{Kind: KindValidation, Message: ErrMsgUnknownTime}
	ErrLoginRequired       = &Error{Kind: KindAuthRequired, Message: ErrMsgLoginRequired}
	ErrOrderInProgress     = &Error{Kind: KindBusy, Message: ErrMsgOrderInProgress}
)

func placeOrderFailed(cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: ErrMsgPlaceOrderFailed, Err: cause}
}
