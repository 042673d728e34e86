package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PlatformNumber is a platform designation that is an integer when the
// submitted value parses as one and raw text otherwise ("2A", "Bay 3").
// Historic documents hold both representations, so the type round-trips
// either through JSON and BSON without losing the original form.
type PlatformNumber struct {
	Number   int
	Text     string
	IsNumber bool
}

// ParsePlatform normalizes a submitted platform value. A parse failure is
// not an error: the raw text is kept as-is.
func ParsePlatform(raw string) PlatformNumber {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PlatformNumber{}
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return PlatformNumber{Number: n, IsNumber: true}
	}
	return PlatformNumber{Text: trimmed}
}

// IsZero reports whether no platform was supplied. The bson codec uses it
// to honor omitempty on struct fields.
func (p PlatformNumber) IsZero() bool {
	return !p.IsNumber && p.Text == ""
}

func (p PlatformNumber) String() string {
	if p.IsNumber {
		return strconv.Itoa(p.Number)
	}
	if p.Text == "" {
		return "-"
	}
	return p.Text
}

func (p PlatformNumber) MarshalJSON() ([]byte, error) {
	if p.IsNumber {
		return json.Marshal(p.Number)
	}
	return json.Marshal(p.Text)
}

func (p *PlatformNumber) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = PlatformNumber{Number: n, IsNumber: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParsePlatform(s)
		return nil
	}
	if string(data) == "null" {
		*p = PlatformNumber{}
		return nil
	}
	return fmt.Errorf("platformNumber: cannot decode %s", string(data))
}

func (p PlatformNumber) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.IsNumber {
		return bson.MarshalValue(int32(p.Number))
	}
	return bson.MarshalValue(p.Text)
}

func (p *PlatformNumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int32:
		*p = PlatformNumber{Number: int(rv.Int32()), IsNumber: true}
	case bsontype.Int64:
		*p = PlatformNumber{Number: int(rv.Int64()), IsNumber: true}
	case bsontype.Double:
		*p = PlatformNumber{Number: int(rv.Double()), IsNumber: true}
	case bsontype.String:
		*p = ParsePlatform(rv.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*p = PlatformNumber{}
	default:
		return fmt.Errorf("platformNumber: unexpected bson type %s", t)
	}
	return nil
}
