// Package whatsapp builds wa.me share links for orders and daily reports.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/devanbrand/storefront-backend/internal/analytics"
	"github.com/devanbrand/storefront-backend/internal/catalog"
	"github.com/devanbrand/storefront-backend/internal/order"
)

const notProvided = "دیاری نەکراوە"

// Link percent-encodes the message into a wa.me deep link for the given
// phone number (international format, digits only).
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// OrderMessage formats a new-order notification: order id, customer fields,
// itemized list, total, payment method and timestamp. Missing customer
// fields render as the "not provided" placeholder.
func OrderMessage(ord order.Order, lang string) string {
	items := make([]string, 0, len(ord.Items))
	for _, it := range ord.Items {
		items = append(items, fmt.Sprintf("▫️ %dx %s", it.Quantity, it.Name.Get(lang)))
	}

	var b strings.Builder
	b.WriteString("*DEVAN BRAND - داواکاری نوێ* 🛍️\n\n")
	fmt.Fprintf(&b, "*کۆدی پسوڵە:* `%s`\n", ord.ID)
	fmt.Fprintf(&b, "*ناوی کڕیار:* %s\n", orPlaceholder(ord.CustomerName))
	fmt.Fprintf(&b, "*ژمارە مۆبایل:* %s\n", orPlaceholder(ord.CustomerPhone))
	fmt.Fprintf(&b, "*ناونیشان:* %s\n\n", orPlaceholder(ord.CustomerAddress))
	b.WriteString("*لیستی کاڵاکان:*\n")
	b.WriteString(strings.Join(items, "\n"))
	fmt.Fprintf(&b, "\n\n*💰 کۆی گشتی:* %s IQD\n", groupDigits(ord.Total))
	fmt.Fprintf(&b, "*💳 شێوازی پارەدان:* %s\n\n", ord.PaymentMethod)
	fmt.Fprintf(&b, "_بەروار: %s_\n\n", ord.Date)
	b.WriteString("_Devan Brand Official POS_")
	return b.String()
}

// OrderLink is the share link for a single order.
func OrderLink(number string, ord order.Order, lang string) string {
	return Link(number, OrderMessage(ord, lang))
}

// SummaryMessage formats the admin daily report: revenue, sales count,
// today's visitors, and up to five out-of-stock and low-stock products each.
func SummaryMessage(sum analytics.Summary, date, lang string) string {
	var b strings.Builder
	b.WriteString("*📊 ڕاپۆرتی گشتی DEVAN BRAND*\n")
	fmt.Fprintf(&b, "*بەروار:* `%s`\n\n", date)
	fmt.Fprintf(&b, "💰 *کۆی داهات:* %s IQD\n", groupDigits(sum.TotalRevenue))
	fmt.Fprintf(&b, "📦 *کۆی فرۆشتن:* %d فاکتۆر\n", sum.TotalOrders)
	fmt.Fprintf(&b, "👥 *سەردانیکەری ئەمڕۆ:* %d\n", sum.DailyVisitors)

	if len(sum.OutOfStock) > 0 {
		fmt.Fprintf(&b, "\n⚠️ *کاڵای تەواوبوو (%d):*\n", len(sum.OutOfStock))
		for _, p := range top5(sum.OutOfStock) {
			fmt.Fprintf(&b, "- %s\n", p.Name.Get(lang))
		}
	}
	if len(sum.LowStock) > 0 {
		fmt.Fprintf(&b, "\n📉 *کاڵای کەمماوە (%d):*\n", len(sum.LowStock))
		for _, p := range top5(sum.LowStock) {
			fmt.Fprintf(&b, "- %s (%d دانە)\n", p.Name.Get(lang), p.Stock)
		}
	}

	b.WriteString("\n_تێبینی: ئەم ڕاپۆرتە بە شێوەی خۆکار لە سیستەمەوە نێردراوە._")
	return b.String()
}

// SummaryLink is the share link for the daily report.
func SummaryLink(number string, sum analytics.Summary, date, lang string) string {
	return Link(number, SummaryMessage(sum, date, lang))
}

func orPlaceholder(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

func top5(products []catalog.Product) []catalog.Product {
	if len(products) > 5 {
		return products[:5]
	}
	return products
}

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
