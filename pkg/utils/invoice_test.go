package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^NOTA-\d{6}-\d{4}$`)
	for i := 0; i < 50; i++ {
		no := GenerateInvoiceNumber("NOTA")
		if !pattern.MatchString(no) {
			t.Fatalf("invoice %q does not match PREFIX-YYMMDD-NNNN", no)
		}
		if !strings.Contains(no, time.Now().Format("060102")) {
			t.Fatalf("invoice %q must carry today's date", no)
		}
	}
}

func TestGenerateInvoiceNumber_PrefixNormalization(t *testing.T) {
	if no := GenerateInvoiceNumber(""); !strings.HasPrefix(no, "INV-") {
		t.Fatalf("empty prefix must default to INV, got %q", no)
	}
	if no := GenerateInvoiceNumber(" nota "); !strings.HasPrefix(no, "NOTA-") {
		t.Fatalf("prefix must be trimmed and uppercased, got %q", no)
	}
}
