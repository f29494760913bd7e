// Package orders validates client-submitted orders and persists them.
package orders

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"horion-farms/api/apperr"
	"horion-farms/api/models"
)

// Tolerance is the largest accepted gap between submitted and recomputed amounts.
const Tolerance = 0.01

var validate = validator.New()

// Validate checks field constraints, then recomputes subtotal and total.
func Validate(c models.OrderCreate) error {
	if err := validate.Struct(c); err != nil {
		return apperr.Validation(describe(err))
	}

	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	if math.Abs(subtotal-c.Subtotal) > Tolerance {
		return apperr.ErrSubtotalMismatch
	}

	// Total is checked against the client subtotal, which is already
	// within Tolerance of the recomputed one.
	total := c.Subtotal + c.DeliveryFee
	if math.Abs(total-c.Total) > Tolerance {
		return apperr.ErrTotalMismatch
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return "invalid order: " + strings.Join(msgs, "; ")
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
