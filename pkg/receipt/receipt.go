package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWidth is the character width of a 58mm thermal receipt.
const DefaultWidth = 32

// CopyWatermark is inserted on every re-print after the first.
const CopyWatermark = "** COPY / SALINAN **"

const customerNameWidth = 20

// Header holds the store block printed at the top of every receipt.
type Header struct {
	StoreName string
	Address   string
	Phone     string
}

// Item is a single billed line. BilledQty may exceed the quantity the
// customer asked for when the minimum-weight floor applied; MinimumApplied
// marks the line so the receipt discloses it.
type Item struct {
	Name           string
	Qty            float64
	UnitPrice      int64
	Total          int64
	MinimumApplied bool
}

// Payment describes how the order was (or will be) paid.
type Payment struct {
	Method   string // cash | transfer | ewallet | qris
	Paid     bool
	Tendered int64 // cash only
	Change   int64 // cash only
}

// Delivery is the optional pickup/delivery block.
type Delivery struct {
	Type       string // dropoff | delivery
	DistanceKm float64
	Cost       int64
}

// Data is the value object a receipt is rendered from. It is composed
// from an order at print time, never stored.
type Data struct {
	Header        Header
	InvoiceNo     string
	Date          time.Time
	CustomerName  string
	Items         []Item
	Subtotal      int64
	Discount      int64
	Total         int64
	Payment       Payment
	Delivery      *Delivery
	DamageNote    string
	FooterMessage string
	MinBillableKg float64
	Copy          bool
}

// FormatRupiah renders an amount as whole rupiah with dot thousands
// separators: 12000 -> "Rp12.000". Rupiah has no subdivision, so there
// are never decimal places. The sign is preserved for negative amounts.
func FormatRupiah(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}

// FormatQty renders a quantity without trailing zeros: 3 -> "3",
// 2.5 -> "2.5".
func FormatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Render produces the full fixed-width receipt text.
func Render(data *Data) string {
	d := NewDocument(DefaultWidth)

	d.Center(strings.ToUpper(orDash(data.Header.StoreName))).
		Center(orDash(data.Header.Address)).
		Center(orDash(data.Header.Phone)).
		Separator()

	if data.Copy {
		d.Center(CopyWatermark)
	}

	name := strings.ToUpper(data.CustomerName)
	if name == "" {
		name = "UMUM"
	}
	if len(name) > customerNameWidth {
		name = name[:customerNameWidth]
	}
	d.Text("No. Nota : " + data.InvoiceNo).
		Text("Tanggal  : " + data.Date.Format("02/01/06 15:04")).
		Text("Plg      : " + name).
		Separator()

	for _, item := range data.Items {
		itemName := item.Name
		if item.MinimumApplied && data.MinBillableKg > 0 {
			itemName += fmt.Sprintf(" (min %skg)", FormatQty(data.MinBillableKg))
		}
		d.Text(itemName).
			Row(FormatQty(item.Qty)+"x "+FormatRupiah(item.UnitPrice), FormatRupiah(item.Total))
	}
	d.Separator()

	if data.Delivery != nil {
		switch data.Delivery.Type {
		case "delivery":
			d.Text(fmt.Sprintf("PENGIRIMAN: %skm", FormatQty(data.Delivery.DistanceKm))).
				Row("ONGKIR", FormatRupiah(data.Delivery.Cost)).
				Separator()
		case "dropoff":
			d.Text("PENGAMBILAN: Drop-off").
				Separator()
		}
	}

	d.Row("SUBTOTAL", FormatRupiah(data.Subtotal))
	if data.Discount > 0 {
		d.Row("DISKON", "-"+FormatRupiah(data.Discount))
	}
	d.Row("TOTAL TAGIHAN", FormatRupiah(data.Total)).
		Separator()

	if data.Payment.Method == "cash" {
		d.Row("BAYAR (TUNAI)", FormatRupiah(data.Payment.Tendered)).
			Row("KEMBALI", FormatRupiah(data.Payment.Change))
	} else {
		status := "BELUM LUNAS"
		if data.Payment.Paid {
			status = "LUNAS"
		}
		d.Row("METODE", strings.ToUpper(data.Payment.Method)).
			Row("STATUS", status)
	}

	if data.DamageNote != "" {
		d.Separator().
			Text("CATATAN KERUSAKAN:")
		for _, line := range wrap(data.DamageNote, DefaultWidth) {
			d.Text(line)
		}
	}

	d.Separator().
		Blank().
		Center("SYARAT & KETENTUAN:").
		Text("- Wajib bawa nota saat ambil")
	if data.MinBillableKg > 0 {
		d.Text(fmt.Sprintf("- Min. tagihan %skg utk kiloan", FormatQty(data.MinBillableKg)))
	}
	d.Text("- Komplain max 1x24 jam").
		Text("- Barang >30 hari hangus").
		Blank()

	if data.FooterMessage != "" {
		d.Center(strings.ToUpper(data.FooterMessage))
	}
	d.Center("TERIMA KASIH")

	return d.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// wrap splits free text into width-bounded lines on word boundaries.
// Words longer than the width are hard-split.
func wrap(s string, width int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
