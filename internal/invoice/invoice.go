// Package invoice renders thermal-printer receipts for ledger orders.
package invoice

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/devanbrand/storefront-backend/internal/order"
)

// width is the character budget of an 80mm-class thermal printer.
const width = 32

const (
	brandName    = "DEVAN BRAND"
	brandTagline = "Luxury Fashion"
	brandCity    = "Sulaymaniyah, Kurdistan"
	footerThanks = "Thank you for shopping with us!"
	footerPOS    = "Powered by Devan POS"
)

// Render lays out a single order as a fixed-width plain-text receipt,
// mirroring the on-screen invoice: brand header, order metadata, item table,
// payment method and total. Item names use the given language code.
func Render(ord order.Order, lang string) string {
	var b strings.Builder

	line := strings.Repeat("-", width)
	dashed := strings.Repeat("- ", width/2)

	b.WriteString(center(brandName) + "\n")
	b.WriteString(center(brandTagline) + "\n")
	b.WriteString(center(brandCity) + "\n")
	b.WriteString(line + "\n")

	// the receipt shows only the date part of the timestamp
	date := ord.Date
	if i := strings.Index(date, ","); i >= 0 {
		date = date[:i]
	}
	b.WriteString(row("Invoice:", ord.ID) + "\n")
	b.WriteString(row("Date:", date) + "\n")
	if ord.CustomerName != "" {
		b.WriteString(row("Customer:", ord.CustomerName) + "\n")
	}
	if ord.CustomerPhone != "" {
		b.WriteString(row("Phone:", ord.CustomerPhone) + "\n")
	}
	if ord.CustomerAddress != "" {
		b.WriteString(row("Address:", ord.CustomerAddress) + "\n")
	}

	b.WriteString(dashed + "\n")
	b.WriteString(itemRow("Item", "Qty", "Price") + "\n")
	for _, it := range ord.Items {
		name := it.Name.Get(lang)
		subtotal := groupDigits(it.Price * it.Quantity)
		b.WriteString(itemRow(name, fmt.Sprintf("%d", it.Quantity), subtotal) + "\n")
	}
	b.WriteString(dashed + "\n")

	b.WriteString(row("Payment:", string(ord.PaymentMethod)) + "\n")
	b.WriteString(row("Total:", groupDigits(ord.Total)+" IQD") + "\n")
	b.WriteString(line + "\n")
	b.WriteString(center(footerThanks) + "\n")
	b.WriteString(center(footerPOS) + "\n")

	return b.String()
}

// Column math measures display width, not bytes; Kurdish and Arabic names
// must line up the same as ASCII on the printer.

func center(s string) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// row right-aligns the value against the label within the receipt width.
func row(label, value string) string {
	gap := width - runewidth.StringWidth(label) - runewidth.StringWidth(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

// itemRow splits the width roughly in half for the name, a quarter each for
// quantity and price, matching the on-screen item table.
func itemRow(name, qty, price string) string {
	nameW := width / 2
	colW := width / 4
	name = runewidth.Truncate(name, nameW, "")
	return runewidth.FillRight(name, nameW) +
		runewidth.FillLeft(qty, colW) +
		runewidth.FillLeft(price, colW)
}

// groupDigits formats n with comma thousands separators, the numeric style
// the invoices and reports use.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
