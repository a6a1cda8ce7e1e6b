package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how an order is paid
type PaymentMethod int

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodTransfer PaymentMethod = 1
	PaymentMethodEWallet  PaymentMethod = 2
	PaymentMethodQRIS     PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	return [...]string{"cash", "transfer", "ewallet", "qris"}[m]
}

// Label returns the receipt label for the method.
func (m PaymentMethod) Label() string {
	return [...]string{"TUNAI", "TRANSFER", "E-WALLET", "QRIS"}[m]
}

func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodQRIS
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	if v, ok := ParsePaymentMethod(str); ok {
		*m = v
	}
	return nil
}

// ParsePaymentMethod maps the wire string to its method value.
func ParsePaymentMethod(str string) (PaymentMethod, bool) {
	switch str {
	case "cash":
		return PaymentMethodCash, true
	case "transfer":
		return PaymentMethodTransfer, true
	case "ewallet":
		return PaymentMethodEWallet, true
	case "qris":
		return PaymentMethodQRIS, true
	}
	return PaymentMethodCash, false
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}

// PaymentStatus represents whether an order has been settled
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = 0
	PaymentStatusPaid    PaymentStatus = 1
)

func (s PaymentStatus) String() string {
	return [...]string{"pending", "paid"}[s]
}

// Label returns the receipt label for the settlement state.
func (s PaymentStatus) Label() string {
	return [...]string{"BELUM LUNAS", "LUNAS"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = PaymentStatusPending
	case "paid":
		*s = PaymentStatusPaid
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
