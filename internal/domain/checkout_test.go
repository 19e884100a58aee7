package domain_test

import (
	"testing"

	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	assert.Equal(t, domain.PaymentMethodCashOnDelivery, domain.ParsePaymentMethod("cod"))
	assert.Equal(t, domain.PaymentMethodMobileWallet, domain.ParsePaymentMethod("gcash"))
	assert.Equal(t, domain.PaymentMethodUnset, domain.ParsePaymentMethod("card"))
	assert.Equal(t, domain.PaymentMethodUnset, domain.ParsePaymentMethod(""))
	assert.False(t, domain.PaymentMethodUnset.IsSet())
}

func TestParseDeliveryMethod(t *testing.T) {
	assert.Equal(t, domain.DeliveryMethodPickup, domain.ParseDeliveryMethod("pickup"))
	assert.Equal(t, domain.DeliveryMethodDeliver, domain.ParseDeliveryMethod("deliver"))
	assert.Equal(t, domain.DeliveryMethodUnset, domain.ParseDeliveryMethod("Deliver"))
	assert.True(t, domain.DeliveryMethodPickup.IsSet())
}
