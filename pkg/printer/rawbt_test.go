package printer

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestRawBTLink_RoundTrip(t *testing.T) {
	payload := []byte("LAUNDRY BERKAH\n--------\nTOTAL  Rp41.000\n")

	link := RawBTLink(payload)
	if !strings.HasPrefix(link, "rawbt:base64,") {
		t.Fatalf("unexpected scheme: %q", link)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(link, "rawbt:base64,"))
	if err != nil {
		t.Fatalf("payload must decode: %v", err)
	}
	if string(decoded) != string(payload) {
		t.Fatalf("decoded payload differs: %q", decoded)
	}
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsConnected() {
		t.Fatal("null printer must report disconnected")
	}
	if err := p.Print([]byte("x")); err != nil {
		t.Fatalf("null printer must swallow writes: %v", err)
	}

	if _, err := NewPrinterFromConfig("laser", ""); err == nil {
		t.Fatal("unknown printer type must be rejected")
	}
}
