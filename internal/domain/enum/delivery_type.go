package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DeliveryType represents how the customer receives a finished order
type DeliveryType int

const (
	DeliveryTypeDropOff  DeliveryType = 0
	DeliveryTypeDelivery DeliveryType = 1
)

func (t DeliveryType) String() string {
	return [...]string{"dropoff", "delivery"}[t]
}

func (t DeliveryType) IsValid() bool {
	return t == DeliveryTypeDropOff || t == DeliveryTypeDelivery
}

func (t DeliveryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DeliveryType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DeliveryType(i)
		return nil
	}
	switch str {
	case "dropoff":
		*t = DeliveryTypeDropOff
	case "delivery":
		*t = DeliveryTypeDelivery
	}
	return nil
}

func (t DeliveryType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DeliveryType) Scan(value interface{}) error {
	if value == nil {
		*t = DeliveryTypeDropOff
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DeliveryType(v)
	case int:
		*t = DeliveryType(v)
	}
	return nil
}
