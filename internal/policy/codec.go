package policy

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/automactic/gatekeeper/internal/reldate"
)

// Datatype はポリシー値のデータ型を表す閉じた列挙。
type Datatype int

const (
	DatatypeNull Datatype = iota
	DatatypeBool
	DatatypeInt
	DatatypeString
	DatatypeFloat
	DatatypeRelativeDate
	DatatypeIPNetwork
)

var datatypeNames = map[Datatype]string{
	DatatypeNull:         "null",
	DatatypeBool:         "bool",
	DatatypeInt:          "int",
	DatatypeString:       "string",
	DatatypeFloat:        "float",
	DatatypeRelativeDate: "relativeDate",
	DatatypeIPNetwork:    "ipNetwork",
}

// String はデータ型の保存名を返す。
func (d Datatype) String() string {
	if name, ok := datatypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("datatype(%d)", int(d))
}

// ParseDatatype は保存名からデータ型を復元する。
func ParseDatatype(name string) (Datatype, error) {
	for dt, n := range datatypeNames {
		if n == name {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDatatype, name)
}

// Value は復号済みのポリシー値を表すタグ付きユニオン。
// Typeに対応するフィールドのみ意味を持つ。比較可能。
type Value struct {
	Type  Datatype
	Bool  bool
	Int   int64
	Str   string
	Float float64
	Date  reldate.RelativeDate
	Net   netip.Prefix
}

// Decode は宣言された型でraw文字列を復号する。
func Decode(dt Datatype, raw string) (Value, error) {
	switch dt {
	case DatatypeNull:
		if raw != "" && raw != "null" {
			return Value{}, fmt.Errorf("null datatype does not accept value %q", raw)
		}
		return Value{Type: DatatypeNull}, nil
	case DatatypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse bool %q: %w", raw, err)
		}
		return Value{Type: DatatypeBool, Bool: b}, nil
	case DatatypeInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse int %q: %w", raw, err)
		}
		return Value{Type: DatatypeInt, Int: i}, nil
	case DatatypeString:
		return Value{Type: DatatypeString, Str: raw}, nil
	case DatatypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse float %q: %w", raw, err)
		}
		return Value{Type: DatatypeFloat, Float: f}, nil
	case DatatypeRelativeDate:
		d, err := reldate.Parse(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: DatatypeRelativeDate, Date: d}, nil
	case DatatypeIPNetwork:
		p, err := netip.ParsePrefix(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse ip network %q: %w", raw, err)
		}
		return Value{Type: DatatypeIPNetwork, Net: p}, nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownDatatype, int(dt))
	}
}

// Encode はValueを保存用文字列へ戻す。
func Encode(v Value) (string, error) {
	switch v.Type {
	case DatatypeNull:
		return "", nil
	case DatatypeBool:
		return strconv.FormatBool(v.Bool), nil
	case DatatypeInt:
		return strconv.FormatInt(v.Int, 10), nil
	case DatatypeString:
		return v.Str, nil
	case DatatypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil
	case DatatypeRelativeDate:
		return v.Date.String(), nil
	case DatatypeIPNetwork:
		return v.Net.String(), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownDatatype, int(v.Type))
	}
}

// Validate はraw値が宣言型で損失なく往復復号できるかを検証する。
// decode(encode(decode(raw))) == decode(raw) が成り立たない値は保存を
// 拒否するために使う。
func Validate(dt Datatype, raw string) error {
	v1, err := Decode(dt, raw)
	if err != nil {
		return err
	}
	enc, err := Encode(v1)
	if err != nil {
		return err
	}
	v2, err := Decode(dt, enc)
	if err != nil {
		return fmt.Errorf("re-decode after encode failed: %w", err)
	}
	if v1 != v2 {
		return fmt.Errorf("value %q does not survive a decode/encode round trip as %s", raw, dt)
	}
	return nil
}
