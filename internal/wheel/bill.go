package wheel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseBill parses a raw bill amount. It accepts only finite numbers
// strictly greater than zero; every failure wraps ErrInvalidBill.
func ParseBill(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, "required"); err != nil {
		return 0, fmt.Errorf("%w: empty", ErrInvalidBill)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidBill, raw)
	}
	if err := validate.Var(v, "gt=0"); err != nil {
		return 0, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidBill, raw)
	}
	return v, nil
}
