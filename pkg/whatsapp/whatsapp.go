// Package whatsapp builds wa.me deep links for the order notification
// templates. The core only produces the URL; opening it (and therefore
// actually sending the message) happens on the cashier's device.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rizkyfh/laundry-pos-api/pkg/receipt"
)

// Template identifies one of the fixed notification messages.
type Template string

const (
	TemplateOrderReceived Template = "masuk"
	TemplateInProgress    Template = "proses"
	TemplateReady         Template = "selesai"
	TemplateCollected     Template = "ambil"
	TemplateLoyaltyCard   Template = "loyalty"
)

// ParseTemplate validates a template name from user input.
func ParseTemplate(s string) (Template, bool) {
	switch Template(s) {
	case TemplateOrderReceived, TemplateInProgress, TemplateReady, TemplateCollected, TemplateLoyaltyCard:
		return Template(s), true
	}
	return "", false
}

// Params carries everything the templates interpolate.
type Params struct {
	CustomerName string
	StoreName    string
	InvoiceNo    string
	Total        int64
	Estimate     string // formatted completion estimate, may be empty
	Stamps       int    // loyalty template only
	CardURL      string // loyalty template only
}

// Body renders the message text for a template.
func Body(t Template, p Params) string {
	name := p.CustomerName
	if name == "" {
		name = "Kak"
	}
	store := p.StoreName
	if store == "" {
		store = "Laundry Kami"
	}

	switch t {
	case TemplateOrderReceived:
		msg := fmt.Sprintf("Halo %s! Orderanmu sudah kami terima dgn nota *%s*. Total: *%s*.",
			name, p.InvoiceNo, receipt.FormatRupiah(p.Total))
		if p.Estimate != "" {
			msg += " Estimasi selesai: " + p.Estimate + "."
		}
		return msg + " Terima kasih!"
	case TemplateInProgress:
		return fmt.Sprintf("Halo %s! Cucianmu sedang kami proses ya. Akan kami kabari jika sudah selesai. (%s)", name, store)
	case TemplateReady:
		return fmt.Sprintf("Halo %s! Cucianmu sudah *SELESAI* & wangi. Silakan diambil ya! Total: *%s*.",
			name, receipt.FormatRupiah(p.Total))
	case TemplateCollected:
		return fmt.Sprintf("Halo %s! Terima kasih sudah mengambil cucian. Semoga puas dengan hasil kami! (%s)", name, store)
	case TemplateLoyaltyCard:
		return fmt.Sprintf("Halo %s!\n\n*Cek Loyalty Card Kamu!*\n\nStamp Terkumpul: %d\n\nLink Card:\n%s\n\nTerima kasih!",
			name, p.Stamps, p.CardURL)
	}
	return ""
}

// NormalizePhone converts a local Indonesian number to wa.me form:
// the leading 0 becomes the 62 country code, separators are stripped.
// Returns "" when no usable digits remain.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && b.Len() == 0 {
			continue
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}

// Link builds the wa.me deep link for a phone number and message body.
func Link(phone, body string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + url.QueryEscape(body)
}
