package common

import (
	"strings"

	"cosmossdk.io/math"
	"github.com/pkg/errors"
)

// ParseAmount parses a positive decimal fiat amount such as "1000" or "12.5".
func ParseAmount(amount string) (math.LegacyDec, error) {
	dec, err := math.LegacyNewDecFromStr(strings.TrimSpace(amount))
	if err != nil {
		return math.LegacyDec{}, errors.Wrapf(ErrValidation, "invalid amount %q", amount)
	}
	if !dec.IsPositive() {
		return math.LegacyDec{}, errors.Wrapf(ErrValidation, "amount must be positive, got %q", amount)
	}
	return dec, nil
}

// ToBaseUnits scales a fiat amount to the token's smallest unit. Amounts with
// more fractional digits than the token supports are rejected.
func ToBaseUnits(amount string, decimals uint8) (math.Int, error) {
	dec, err := ParseAmount(amount)
	if err != nil {
		return math.Int{}, err
	}
	scaled := dec.MulInt(math.NewIntWithDecimal(1, int(decimals)))
	if !scaled.IsInteger() {
		return math.Int{}, errors.Wrapf(ErrValidation, "amount %q has more than %d decimals", amount, decimals)
	}
	return scaled.TruncateInt(), nil
}

// FormatBaseUnits renders a token amount in whole units for notifications.
func FormatBaseUnits(amount math.Int, decimals uint8) string {
	return math.LegacyNewDecFromIntWithPrec(amount, int64(decimals)).String()
}
