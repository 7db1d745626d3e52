package common

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// NormalizeAddress validates a 0x address and returns its lower-case form.
// The zero address is rejected.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !ethcommon.IsHexAddress(address) || !strings.HasPrefix(address, "0x") {
		return "", errors.Wrapf(ErrValidation, "invalid address %q", address)
	}
	normalized := strings.ToLower(ethcommon.HexToAddress(address).Hex())
	if normalized == ZeroAddress {
		return "", errors.Wrap(ErrValidation, "zero address")
	}
	return normalized, nil
}

func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errors.Wrapf(ErrValidation, "invalid email %q", email)
	}
	return nil
}

// ValidateStruct runs the `validate` tags of s.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(ErrValidation, err.Error())
	}
	return nil
}

// RandomHex returns n random bytes hex encoded.
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ValidateTxHash checks for a 0x prefixed 32 byte transaction hash.
func ValidateTxHash(hash string) error {
	if err := validate.Var(hash, "required,startswith=0x,len=66,hexadecimal"); err != nil {
		return errors.Wrapf(ErrValidation, "invalid transaction hash %q", hash)
	}
	return nil
}
