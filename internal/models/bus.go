package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrUnknownField is returned when a NewBus document carries a key the
// contract does not define, including the server-assigned id and createdAt.
var ErrUnknownField = errors.New("unknown field")

// ErrInvalidCapacity is returned for a negative seating capacity.
var ErrInvalidCapacity = errors.New("invalid capacity")

// unknownFieldPrefix is how encoding/json's Decoder reports a key rejected by
// DisallowUnknownFields: `json: unknown field "<name>"`. There is no typed
// error for it.
const unknownFieldPrefix = "json: unknown field "

// Bus represents a fleet bus.
type Bus struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	LicensePlate string    `bson:"license_plate" json:"licensePlate"`
	Model        string    `bson:"model" json:"model"`
	Capacity     int       `bson:"capacity" json:"capacity"` // seats, >= 0
	Status       BusStatus `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// NewBus is a Bus before it has been stored. ID and CreatedAt are assigned
// by whoever persists it.
type NewBus struct {
	LicensePlate string    `bson:"license_plate" json:"licensePlate"`
	Model        string    `bson:"model" json:"model"`
	Capacity     int       `bson:"capacity" json:"capacity"`
	Status       BusStatus `bson:"status" json:"status"`
}

// DecodeNewBus reads exactly one NewBus JSON document from r. Keys outside
// the NewBus shape, trailing data, a missing or out-of-set status and a
// negative capacity are rejected.
func DecodeNewBus(r io.Reader) (NewBus, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var nb NewBus
	if err := dec.Decode(&nb); err != nil {
		if msg := err.Error(); strings.HasPrefix(msg, unknownFieldPrefix) {
			return NewBus{}, fmt.Errorf("%w: %s", ErrUnknownField, strings.TrimPrefix(msg, unknownFieldPrefix))
		}
		return NewBus{}, fmt.Errorf("decode new bus: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return NewBus{}, errors.New("decode new bus: unexpected data after document")
	}

	// A missing status or a JSON null never reaches UnmarshalText.
	if !nb.Status.IsValid() {
		return NewBus{}, fmt.Errorf("%w: %q", ErrInvalidBusStatus, string(nb.Status))
	}
	if nb.Capacity < 0 {
		return NewBus{}, fmt.Errorf("%w: %d", ErrInvalidCapacity, nb.Capacity)
	}
	return nb, nil
}
