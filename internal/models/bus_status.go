package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ErrInvalidBusStatus is returned when a value outside the BusStatus set is
// parsed, decoded or encoded.
var ErrInvalidBusStatus = errors.New("invalid bus status")

// BusStatus is the operational state of a bus.
type BusStatus string

const (
	BusOperational      BusStatus = "OPERATIONAL"
	BusInService        BusStatus = "IN_SERVICE"
	BusUnderMaintenance BusStatus = "UNDER_MAINTENANCE"
	BusOutOfService     BusStatus = "OUT_OF_SERVICE"
)

// BusStatuses returns every bus status in declaration order.
func BusStatuses() []BusStatus {
	return []BusStatus{BusOperational, BusInService, BusUnderMaintenance, BusOutOfService}
}

// IsValid reports whether s is one of the four bus statuses.
func (s BusStatus) IsValid() bool {
	switch s {
	case BusOperational, BusInService, BusUnderMaintenance, BusOutOfService:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s BusStatus) String() string {
	return string(s)
}

// ParseBusStatus matches raw exactly against the bus status set.
func ParseBusStatus(raw string) (BusStatus, error) {
	s := BusStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBusStatus, raw)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler; encoding/json uses it too.
func (s BusStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBusStatus, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BusStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseBusStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (s BusStatus) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !s.IsValid() {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidBusStatus, string(s))
	}
	return bson.MarshalValue(string(s))
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (s *BusStatus) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: bson type %s is not a string", ErrInvalidBusStatus, t)
	}
	return s.UnmarshalText([]byte(raw))
}
