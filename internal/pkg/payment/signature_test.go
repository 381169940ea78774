package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	sig := ComputeSignature("order_1", "pay_1", secret)

	assert.True(t, VerifySignature("order_1", "pay_1", sig, secret))
	assert.True(t, VerifySignature("order_1", "pay_1", strings.ToUpper(sig), secret), "hex case must not matter")

	assert.False(t, VerifySignature("order_1", "pay_2", sig, secret), "different payment id")
	assert.False(t, VerifySignature("order_2", "pay_1", sig, secret), "different order id")
	assert.False(t, VerifySignature("order_1", "pay_1", sig, "other_secret"))
	assert.False(t, VerifySignature("order_1", "pay_1", "", secret))
	assert.False(t, VerifySignature("order_1", "pay_1", "not-hex!", secret))
	assert.False(t, VerifySignature("order_1", "pay_1", sig, ""))
}
