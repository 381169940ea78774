package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saiyam0211/inty-backend/internal/pkg/ledger"
	"github.com/saiyam0211/inty-backend/internal/pkg/payment"
)

func TestMapEngineError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"insufficient credits", ledger.ErrInsufficientCredits, http.StatusPaymentRequired, "insufficient_credits"},
		{"negative delta", ledger.ErrNegativeDelta, http.StatusBadRequest, "bad_request"},
		{"invalid subscription", payment.ErrInvalidSubscription, http.StatusBadRequest, "invalid_subscription"},
		{"gateway unavailable", payment.ErrGatewayUnavailable, http.StatusBadGateway, "gateway_unavailable"},
		{"signature mismatch", payment.ErrSignatureMismatch, http.StatusBadRequest, "verification_failed"},
		{"order not found", payment.ErrOrderNotFound, http.StatusNotFound, "order_not_found"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(c *fiber.Ctx) error {
				return mapEngineError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]string
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantCode, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

// Wrapped errors must still map by their sentinel.
func TestMapEngineErrorWrapped(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return mapEngineError(c, fmt.Errorf("request failed: %w", payment.ErrGatewayUnavailable))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "gateway_unavailable"))
}
