package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ErrInvalidServiceStatus is returned for values outside the ServiceStatus set.
var ErrInvalidServiceStatus = errors.New("invalid service status")

// ServiceStatus is the lifecycle stage of a transportation service.
type ServiceStatus string

const (
	ServiceScheduled  ServiceStatus = "SCHEDULED"
	ServiceCanceled   ServiceStatus = "CANCELED"
	ServiceInProgress ServiceStatus = "IN_PROGRESS"
	ServiceCompleted  ServiceStatus = "COMPLETED"
)

var serviceStatuses = []ServiceStatus{ServiceScheduled, ServiceCanceled, ServiceInProgress, ServiceCompleted}

// ServiceStatuses returns a copy of the service status set.
func ServiceStatuses() []ServiceStatus {
	out := make([]ServiceStatus, len(serviceStatuses))
	copy(out, serviceStatuses)
	return out
}

// IsValid reports whether s belongs to the service status set.
func (s ServiceStatus) IsValid() bool {
	for _, v := range serviceStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s ServiceStatus) String() string {
	return string(s)
}

// ParseServiceStatus is case-sensitive; "scheduled" is rejected.
func ParseServiceStatus(raw string) (ServiceStatus, error) {
	s := ServiceStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidServiceStatus, raw)
	}
	return s, nil
}

func (s ServiceStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceStatus, string(s))
	}
	return []byte(s), nil
}

func (s *ServiceStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseServiceStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s ServiceStatus) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !s.IsValid() {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidServiceStatus, string(s))
	}
	return bson.MarshalValue(string(s))
}

func (s *ServiceStatus) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: bson type %s is not a string", ErrInvalidServiceStatus, t)
	}
	return s.UnmarshalText([]byte(raw))
}
