package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// GenerateInvoiceNumber builds an invoice number of the form
// PREFIX-YYMMDD-NNNN where NNNN is a random four digit suffix.
// Uniqueness is probabilistic; callers that need a hard guarantee
// should check the store before persisting.
func GenerateInvoiceNumber(prefix string) string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = "INV"
	}
	date := time.Now().Format("060102")
	suffix := 1000 + rand.Intn(9000)
	return fmt.Sprintf("%s-%s-%d", prefix, date, suffix)
}
