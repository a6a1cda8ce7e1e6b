package enum

import (
	"encoding/json"
	"testing"
)

func TestOrderStatus_Parse(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusQueued, OrderStatusInProgress, OrderStatusReady, OrderStatusCollected, OrderStatusCancelled} {
		parsed, ok := ParseOrderStatus(s.String())
		if !ok || parsed != s {
			t.Fatalf("ParseOrderStatus(%q) = %v, %v", s.String(), parsed, ok)
		}
	}
	if _, ok := ParseOrderStatus("washed"); ok {
		t.Fatal("unknown status must not parse")
	}
}

func TestOrderStatus_UnmarshalAcceptsStringOrInt(t *testing.T) {
	var s OrderStatus
	if err := json.Unmarshal([]byte(`"ready"`), &s); err != nil || s != OrderStatusReady {
		t.Fatalf("string form: %v, %v", s, err)
	}
	if err := json.Unmarshal([]byte(`2`), &s); err != nil || s != OrderStatusReady {
		t.Fatalf("int form: %v, %v", s, err)
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	if OrderStatusQueued.IsTerminal() || OrderStatusReady.IsTerminal() {
		t.Fatal("active statuses must not be terminal")
	}
	if !OrderStatusCollected.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatal("collected and cancelled are terminal")
	}
}

func TestOrderStatus_Label(t *testing.T) {
	if OrderStatusQueued.Label() != "Antrian" {
		t.Fatalf("queued label = %q", OrderStatusQueued.Label())
	}
	if OrderStatusCollected.Label() != "Diambil" {
		t.Fatalf("collected label = %q", OrderStatusCollected.Label())
	}
}
