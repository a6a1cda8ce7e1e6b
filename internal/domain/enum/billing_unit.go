package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillingUnit represents how a service line is quantified
type BillingUnit int

const (
	BillingUnitKg  BillingUnit = 0
	BillingUnitPcs BillingUnit = 1
)

func (u BillingUnit) String() string {
	return [...]string{"kg", "pcs"}[u]
}

func (u BillingUnit) IsValid() bool {
	return u == BillingUnitKg || u == BillingUnitPcs
}

func (u BillingUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *BillingUnit) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*u = BillingUnit(i)
		return nil
	}
	switch str {
	case "kg":
		*u = BillingUnitKg
	case "pcs":
		*u = BillingUnitPcs
	}
	return nil
}

func (u BillingUnit) Value() (driver.Value, error) {
	return int64(u), nil
}

func (u *BillingUnit) Scan(value interface{}) error {
	if value == nil {
		*u = BillingUnitKg
		return nil
	}
	switch v := value.(type) {
	case int64:
		*u = BillingUnit(v)
	case int:
		*u = BillingUnit(v)
	}
	return nil
}
