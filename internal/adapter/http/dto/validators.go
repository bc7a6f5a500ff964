package dto

import (
	"regexp"
	"strings"

	"fare-validator/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Card UIDs are 4 to 10 bytes of hex, optionally colon separated.
var cardIDRe = regexp.MustCompile(`(?i)^(?:[0-9a-f]{2}:?){3,9}[0-9a-f]{2}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("card_id", validateCardID)
		_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	}
}

func validateCardID(fl validator.FieldLevel) bool {
	return cardIDRe.MatchString(fl.Field().String())
}

// validateDecimalAmount accepts strictly positive decimals with at most two
// fractional digits.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && domain.WholeCents(d)
}

// Normalize trims the username. The password is compared byte for byte.
func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}
