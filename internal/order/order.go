package order

import (
	"errors"
	"math/rand"

	"github.com/devanbrand/storefront-backend/internal/cart"
)

// PaymentMethod is the fixed set of payment options the store accepts.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentFIB     PaymentMethod = "FIB"
	PaymentFastPay PaymentMethod = "FastPay"
	PaymentQiCard  PaymentMethod = "QiCard"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ParsePaymentMethod validates a client-supplied payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentFIB, PaymentFastPay, PaymentQiCard:
		return PaymentMethod(s), nil
	}
	return "", ErrInvalidPaymentMethod
}

// DateLayout renders day/month/year hour/minute with Western-Arabic digits
// regardless of the active storefront language, matching the invoice contract.
const DateLayout = "02/01/2006, 15:04"

// Order is an immutable record of a completed checkout. Items are frozen
// copies taken from the cart, decoupled from later catalog edits.
type Order struct {
	ID              string          `json:"id"`
	Items           []cart.CartItem `json:"items"`
	Total           int             `json:"total"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Date            string          `json:"date"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
}

const (
	idPrefix   = "BLAK-"
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength   = 9
)

// NewID generates a brand-prefixed random base-36 order identifier.
// Uniqueness against the ledger is the caller's job, see Service.NewUniqueID.
func NewID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return idPrefix + string(b)
}
