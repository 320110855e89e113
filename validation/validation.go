package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// CartLine is one {product, count} entry of a checkout payload.
type CartLine struct {
	Product uint `json:"product" validate:"required"`
	Count   int  `json:"count" validate:"required,min=1"`
}

// CheckoutRequest is the POST /v1/orders body.
type CheckoutRequest struct {
	Cart    []CartLine `json:"cart" validate:"required,min=1,dive"`
	Address string     `json:"address" validate:"required"`
	Coupon  string     `json:"coupon"`
}

// New returns a configured validator with struct-level checkout validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})
	return v
}

// checkoutStructValidation rejects carts referencing the same product twice,
// which would otherwise double-decrement stock for a single line check.
func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	seen := make(map[uint]bool, len(req.Cart))
	for _, line := range req.Cart {
		if seen[line.Product] {
			sl.ReportError(req.Cart, "cart", "Cart", "unique_products", "")
			return
		}
		seen[line.Product] = true
	}
}

// BindAndValidate binds the JSON body into out and runs validation. On failure it
// writes the 400 envelope and returns an error so the handler can short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": firstValidationMessage(err)})
		return err
	}
	return nil
}

func firstValidationMessage(err error) string {
	if ve, ok := err.(validatorv10.ValidationErrors); ok && len(ve) > 0 {
		return ve[0].Error()
	}
	return err.Error()
}
