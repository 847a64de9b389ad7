package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentInfo_Approved(t *testing.T) {
	assert.True(t, (&PaymentInfo{Status: "approved"}).Approved())
	assert.False(t, (&PaymentInfo{Status: "pending"}).Approved())
	assert.False(t, (&PaymentInfo{Status: "rejected"}).Approved())
}

func TestPaymentInfo_Rejected(t *testing.T) {
	assert.True(t, (&PaymentInfo{Status: "rejected"}).Rejected())
	assert.True(t, (&PaymentInfo{Status: "cancelled"}).Rejected())

	// pending e in_process não derrubam o hold
	assert.False(t, (&PaymentInfo{Status: "pending"}).Rejected())
	assert.False(t, (&PaymentInfo{Status: "in_process"}).Rejected())
}
