package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// UserStatusRQ is the request body for changing a user's active flag.
type UserStatusRQ struct {
	Active bool `bson:"active" json:"active"`
}

// UserStatusRS pairs a user id with the resulting active flag.
type UserStatusRS struct {
	ID     int64 `bson:"id" json:"id"`
	Active bool  `bson:"active" json:"active"`
}

// Issue codes reported by the validator.
const (
	IssueInvalidType = "invalid_type"
)

// Issue describes one failed check. Path is empty for the input itself.
type Issue struct {
	Path     string `json:"path"`
	Code     string `json:"code"`
	Expected string `json:"expected"`
	Received string `json:"received"`
	Message  string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError is the failure side of a schema check.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

// HasPath reports whether any issue refers to path.
func (e *ValidationError) HasPath(path string) bool {
	for _, issue := range e.Issues {
		if issue.Path == path {
			return true
		}
	}
	return false
}

// AsValidationError unwraps err to a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// ParseUserStatusRQ checks input against the UserStatusRQ schema: an object
// (map[string]any, bson.M or bson.D) with a required boolean "active".
// Values are never coerced and keys other than "active" are dropped.
func ParseUserStatusRQ(input any) (UserStatusRQ, error) {
	var fields map[string]any
	switch v := input.(type) {
	case map[string]any:
		fields = v
	case bson.M:
		fields = v
	case bson.D:
		fields = make(map[string]any, len(v))
		for _, e := range v {
			if _, seen := fields[e.Key]; !seen {
				fields[e.Key] = e.Value
			}
		}
	default:
		return UserStatusRQ{}, &ValidationError{Issues: []Issue{
			invalidType("", "object", v),
			required("active"),
		}}
	}

	raw, ok := fields["active"]
	if !ok {
		return UserStatusRQ{}, &ValidationError{Issues: []Issue{required("active")}}
	}
	active, ok := raw.(bool)
	if !ok {
		return UserStatusRQ{}, &ValidationError{Issues: []Issue{invalidType("active", "boolean", raw)}}
	}
	return UserStatusRQ{Active: active}, nil
}

// DecodeUserStatusRQ parses a JSON document and validates it.
func DecodeUserStatusRQ(data []byte) (UserStatusRQ, error) {
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return UserStatusRQ{}, fmt.Errorf("decode user status request: %w", err)
	}
	return ParseUserStatusRQ(input)
}

// UnmarshalJSON makes json.Unmarshal enforce the schema.
func (r *UserStatusRQ) UnmarshalJSON(data []byte) error {
	parsed, err := DecodeUserStatusRQ(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func required(path string) Issue {
	return Issue{
		Path:     path,
		Code:     IssueInvalidType,
		Expected: "boolean",
		Received: "undefined",
		Message:  "Required",
	}
}

func invalidType(path, expected string, v any) Issue {
	received := typeName(v)
	return Issue{
		Path:     path,
		Code:     IssueInvalidType,
		Expected: expected,
		Received: received,
		Message:  fmt.Sprintf("expected %s, received %s", expected, received),
	}
}

// typeName names v the way JSON would see it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return "number"
	case []any, bson.A:
		return "array"
	case map[string]any, bson.M, bson.D:
		return "object"
	default:
		return "unknown"
	}
}
