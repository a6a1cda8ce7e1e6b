package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountKind represents how a promo discount is computed
type DiscountKind int

const (
	DiscountKindPercent DiscountKind = 0
	DiscountKindFixed   DiscountKind = 1
)

func (k DiscountKind) String() string {
	return [...]string{"percent", "fixed"}[k]
}

func (k DiscountKind) IsValid() bool {
	return k == DiscountKindPercent || k == DiscountKindFixed
}

func (k DiscountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DiscountKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = DiscountKind(i)
		return nil
	}
	switch str {
	case "percent":
		*k = DiscountKindPercent
	case "fixed":
		*k = DiscountKindFixed
	}
	return nil
}

func (k DiscountKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DiscountKind) Scan(value interface{}) error {
	if value == nil {
		*k = DiscountKindPercent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DiscountKind(v)
	case int:
		*k = DiscountKind(v)
	}
	return nil
}

// EligibilityKind represents the threshold a cart must meet for a promo
type EligibilityKind int

const (
	EligibilityKindWeight   EligibilityKind = 0
	EligibilityKindSubtotal EligibilityKind = 1
)

func (k EligibilityKind) String() string {
	return [...]string{"weight", "subtotal"}[k]
}

func (k EligibilityKind) IsValid() bool {
	return k == EligibilityKindWeight || k == EligibilityKindSubtotal
}

func (k EligibilityKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *EligibilityKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = EligibilityKind(i)
		return nil
	}
	switch str {
	case "weight":
		*k = EligibilityKindWeight
	case "subtotal":
		*k = EligibilityKindSubtotal
	}
	return nil
}

func (k EligibilityKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *EligibilityKind) Scan(value interface{}) error {
	if value == nil {
		*k = EligibilityKindWeight
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = EligibilityKind(v)
	case int:
		*k = EligibilityKind(v)
	}
	return nil
}
