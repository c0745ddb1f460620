// Package reldate は基準日からの相対指定が可能な日付仕様を提供する。
//
// 仕様は "mm/dd/yyyy" の3要素からなり、各要素は絶対値（"09"、"2024"）か
// 符号付き相対オフセット（"+4"、"-1"）のどちらかを取る。相対オフセットは
// 基準日の同じ要素にのみ加算され、要素間の繰り上げは行わない。
package reldate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSpec は日付仕様が文法に適合しない場合のエラー。
var ErrInvalidSpec = errors.New("invalid relative date spec")

var specPattern = regexp.MustCompile(`^(0[1-9]|1[012]|[+-]\d+)/(0[1-9]|[12][0-9]|3[01]|[+-]\d+)/(\d{4}|[+-]\d+)$`)

// Field は日付の1要素を表す。Relativeがtrueの場合、Valueは基準日の
// 同じ要素へのオフセットとなる。
type Field struct {
	Relative bool
	Value    int
}

// RelativeDate はパース済みの日付仕様を表す不変値型。
type RelativeDate struct {
	Month Field
	Day   Field
	Year  Field
}

// Components は解決済みの日付要素を表す。
// 相対オフセットの加算結果はカレンダー正規化されないため、Monthが12を
// 超える、または1未満になる場合がある。暦上の日時が必要な場合は
// Localを呼ぶ（time.Dateの正規化規則が適用される）。
type Components struct {
	Year  int
	Month int
	Day   int
}

// Parse は日付仕様文字列をパースする。
func Parse(spec string) (RelativeDate, error) {
	m := specPattern.FindStringSubmatch(spec)
	if m == nil {
		return RelativeDate{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	month, err := parseField(m[1])
	if err != nil {
		return RelativeDate{}, err
	}
	day, err := parseField(m[2])
	if err != nil {
		return RelativeDate{}, err
	}
	year, err := parseField(m[3])
	if err != nil {
		return RelativeDate{}, err
	}
	return RelativeDate{Month: month, Day: day, Year: year}, nil
}

// MustParse はParseに失敗した場合パニックする。定数仕様の初期化用。
func MustParse(spec string) RelativeDate {
	d, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return d
}

func parseField(s string) (Field, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return Field{}, fmt.Errorf("%w: %q", ErrInvalidSpec, s)
	}
	relative := strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")
	return Field{Relative: relative, Value: v}, nil
}

// Resolve は基準日refに対して仕様を解決する。
// 相対要素は同じ単位の要素への単純な整数加算であり、月・日の繰り上げは
// 行わない。
func (d RelativeDate) Resolve(ref time.Time) Components {
	return Components{
		Year:  resolveField(d.Year, ref.Year()),
		Month: resolveField(d.Month, int(ref.Month())),
		Day:   resolveField(d.Day, ref.Day()),
	}
}

func resolveField(f Field, ref int) int {
	if f.Relative {
		return ref + f.Value
	}
	return f.Value
}

// String は仕様を正規形の文字列へ戻す。Parseとの往復が成り立つ。
func (d RelativeDate) String() string {
	return formatField(d.Month, 2) + "/" + formatField(d.Day, 2) + "/" + formatField(d.Year, 4)
}

func formatField(f Field, width int) string {
	if f.Relative {
		return fmt.Sprintf("%+d", f.Value)
	}
	return fmt.Sprintf("%0*d", width, f.Value)
}

// Equal は2つの仕様が構造的に等しいかを判定する。
// 指定そのものの比較であり、すべての基準日で同じ日付へ解決されるか
// 否かの判定ではない。
func (d RelativeDate) Equal(o RelativeDate) bool {
	return d == o
}

// Local は解決済み要素をlocにおけるその日の0時として返す。
// 範囲外の要素はtime.Dateの規則で正規化される。
func (c Components) Local(loc *time.Location) time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, loc)
}
