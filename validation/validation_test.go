package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutRequestValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     CheckoutRequest
		wantErr bool
	}{
		{
			name: "valid single line",
			req: CheckoutRequest{
				Cart:    []CartLine{{Product: 1, Count: 2}},
				Address: "12 Main St",
			},
		},
		{
			name: "valid with coupon",
			req: CheckoutRequest{
				Cart:    []CartLine{{Product: 1, Count: 1}, {Product: 2, Count: 3}},
				Address: "12 Main St",
				Coupon:  "BLACKFRIDAY",
			},
		},
		{
			name:    "empty cart",
			req:     CheckoutRequest{Address: "12 Main St"},
			wantErr: true,
		},
		{
			name: "missing address",
			req: CheckoutRequest{
				Cart: []CartLine{{Product: 1, Count: 1}},
			},
			wantErr: true,
		},
		{
			name: "zero count",
			req: CheckoutRequest{
				Cart:    []CartLine{{Product: 1, Count: 0}},
				Address: "12 Main St",
			},
			wantErr: true,
		},
		{
			name: "duplicate product lines",
			req: CheckoutRequest{
				Cart:    []CartLine{{Product: 1, Count: 1}, {Product: 1, Count: 2}},
				Address: "12 Main St",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
