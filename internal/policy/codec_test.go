package policy

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		dt   Datatype
		raw  string
		want Value
	}{
		{DatatypeNull, "", Value{Type: DatatypeNull}},
		{DatatypeBool, "true", Value{Type: DatatypeBool, Bool: true}},
		{DatatypeBool, "1", Value{Type: DatatypeBool, Bool: true}},
		{DatatypeInt, "42", Value{Type: DatatypeInt, Int: 42}},
		{DatatypeInt, "-7", Value{Type: DatatypeInt, Int: -7}},
		{DatatypeString, "hello", Value{Type: DatatypeString, Str: "hello"}},
		{DatatypeFloat, "0.5", Value{Type: DatatypeFloat, Float: 0.5}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.dt, tt.raw)
		if err != nil {
			t.Errorf("Decode(%s, %q) error = %v", tt.dt, tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decode(%s, %q) = %+v, want %+v", tt.dt, tt.raw, got, tt.want)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		dt  Datatype
		raw string
	}{
		{DatatypeNull, "something"},
		{DatatypeBool, "yes"},
		{DatatypeInt, "abc"},
		{DatatypeInt, "1.5"},
		{DatatypeFloat, "one"},
		{DatatypeRelativeDate, "13/04/2020"},
		{DatatypeIPNetwork, "192.168.0.0"},
		{Datatype(99), "anything"},
	}
	for _, tt := range tests {
		if _, err := Decode(tt.dt, tt.raw); err == nil {
			t.Errorf("Decode(%s, %q) error = nil, want error", tt.dt, tt.raw)
		}
	}
}

// decode(encode(decode(raw))) == decode(raw) が全データ型で成り立つ。
func TestRoundTripLaw(t *testing.T) {
	tests := []struct {
		dt  Datatype
		raw string
	}{
		{DatatypeNull, ""},
		{DatatypeBool, "1"}, // 正規形でない表記も往復後は安定する
		{DatatypeBool, "false"},
		{DatatypeInt, "0042"},
		{DatatypeString, "  spaces kept  "},
		{DatatypeFloat, "0.1"},
		{DatatypeRelativeDate, "09/04/+4"},
		{DatatypeRelativeDate, "-1/05/+4"},
		{DatatypeIPNetwork, "192.168.0.0/16"},
		{DatatypeIPNetwork, "2001:db8::/32"},
	}
	for _, tt := range tests {
		v1, err := Decode(tt.dt, tt.raw)
		if err != nil {
			t.Fatalf("Decode(%s, %q) error = %v", tt.dt, tt.raw, err)
		}
		enc, err := Encode(v1)
		if err != nil {
			t.Fatalf("Encode(%+v) error = %v", v1, err)
		}
		v2, err := Decode(tt.dt, enc)
		if err != nil {
			t.Fatalf("Decode(%s, %q) after encode error = %v", tt.dt, enc, err)
		}
		if v1 != v2 {
			t.Errorf("round trip of (%s, %q): %+v != %+v", tt.dt, tt.raw, v1, v2)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(DatatypeInt, "42"); err != nil {
		t.Errorf("Validate(int, 42) error = %v", err)
	}
	if err := Validate(DatatypeInt, "abc"); err == nil {
		t.Errorf("Validate(int, abc) error = nil, want error")
	}
	if err := Validate(DatatypeRelativeDate, "09/04/+4"); err != nil {
		t.Errorf("Validate(relativeDate, 09/04/+4) error = %v", err)
	}
}

func TestParseDatatype(t *testing.T) {
	for dt, name := range datatypeNames {
		got, err := ParseDatatype(name)
		if err != nil {
			t.Errorf("ParseDatatype(%q) error = %v", name, err)
			continue
		}
		if got != dt {
			t.Errorf("ParseDatatype(%q) = %v, want %v", name, got, dt)
		}
	}
	if _, err := ParseDatatype("complex"); err == nil {
		t.Errorf("ParseDatatype(complex) error = nil, want error")
	}
}
