package whatsapp

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "6281234567890"},
		{"+6281234567890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"0812-3456-7890", "6281234567890"},
		{"0812 3456 7890", "6281234567890"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLink(t *testing.T) {
	link := Link("081234567890", "Halo! Total: Rp41.000")
	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if strings.ContainsAny(link, " ") {
		t.Fatalf("body must be query-escaped: %q", link)
	}
}

func TestParseTemplate(t *testing.T) {
	for _, name := range []string{"masuk", "proses", "selesai", "ambil", "loyalty"} {
		if _, ok := ParseTemplate(name); !ok {
			t.Fatalf("ParseTemplate(%q) must succeed", name)
		}
	}
	if _, ok := ParseTemplate("batal"); ok {
		t.Fatal("unknown template must be rejected")
	}
}

func TestBody(t *testing.T) {
	p := Params{
		CustomerName: "Siti",
		StoreName:    "Laundry Berkah",
		InvoiceNo:    "INV-260828-4821",
		Total:        41000,
		Estimate:     "30/08/2026 14:00",
	}

	body := Body(TemplateOrderReceived, p)
	if !strings.Contains(body, "INV-260828-4821") || !strings.Contains(body, "Rp41.000") {
		t.Fatalf("received template must carry invoice and total: %q", body)
	}
	if !strings.Contains(body, p.Estimate) {
		t.Fatalf("received template must carry the estimate: %q", body)
	}

	if body := Body(TemplateReady, p); !strings.Contains(body, "SELESAI") {
		t.Fatalf("ready template must announce completion: %q", body)
	}

	card := Body(TemplateLoyaltyCard, Params{CustomerName: "Siti", Stamps: 7, CardURL: "http://x/card"})
	if !strings.Contains(card, "7") || !strings.Contains(card, "http://x/card") {
		t.Fatalf("loyalty template must carry stamps and link: %q", card)
	}

	// Missing name falls back to a generic greeting.
	if body := Body(TemplateReady, Params{Total: 1000}); !strings.Contains(body, "Kak") {
		t.Fatalf("empty name must fall back: %q", body)
	}
}
