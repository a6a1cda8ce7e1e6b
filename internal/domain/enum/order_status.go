package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle state of a laundry order
type OrderStatus int

const (
	OrderStatusQueued     OrderStatus = 0
	OrderStatusInProgress OrderStatus = 1
	OrderStatusReady      OrderStatus = 2
	OrderStatusCollected  OrderStatus = 3
	OrderStatusCancelled  OrderStatus = 4
)

func (s OrderStatus) String() string {
	return [...]string{"queued", "in_progress", "ready", "collected", "cancelled"}[s]
}

// Label returns the customer facing Indonesian label used on receipts
// and WhatsApp messages.
func (s OrderStatus) Label() string {
	return [...]string{"Antrian", "Proses", "Selesai", "Diambil", "Batal"}[s]
}

// IsValid reports whether the status is one of the known states.
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusQueued && s <= OrderStatusCancelled
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCollected || s == OrderStatusCancelled
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	if v, ok := ParseOrderStatus(str); ok {
		*s = v
	}
	return nil
}

// ParseOrderStatus maps the wire string to its status value.
func ParseOrderStatus(str string) (OrderStatus, bool) {
	switch str {
	case "queued":
		return OrderStatusQueued, true
	case "in_progress":
		return OrderStatusInProgress, true
	case "ready":
		return OrderStatusReady, true
	case "collected":
		return OrderStatusCollected, true
	case "cancelled":
		return OrderStatusCancelled, true
	}
	return OrderStatusQueued, false
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusQueued
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
