package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	// A fresh install enforces the 3kg billing floor out of the box.
	if cfg.Store.MinBillableKg != 3 {
		t.Fatalf("min billable kg = %v, want 3", cfg.Store.MinBillableKg)
	}
	if !cfg.Store.EnforceMinimum {
		t.Fatal("billing floor must be enforced by default")
	}
	if cfg.Store.InvoicePrefix != "INV" {
		t.Fatalf("invoice prefix = %q, want INV", cfg.Store.InvoicePrefix)
	}

	if cfg.RateLimit.Requests != 30 || cfg.RateLimit.Duration != 60 {
		t.Fatalf("rate limit defaults = %d/%ds, want 30/60s",
			cfg.RateLimit.Requests, cfg.RateLimit.Duration)
	}
}
