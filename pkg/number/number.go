// Package number holds JSON number types that are lenient about quoting.
package number

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Float is a float64 that decodes from a JSON number or a string holding
// one, so both 5 and "5" are accepted. It always encodes as a number.
type Float float64

// UnmarshalJSON rejects anything that is not a finite number. The returned
// *json.UnmarshalTypeError gets the field name filled in by the decoder.
func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return &json.UnmarshalTypeError{
			Value: string(data),
			Type:  reflect.TypeFor[Float](),
		}
	}

	*f = Float(v)
	return nil
}

func (f Float) Float64() float64 { return float64(f) }

// Deref returns the value p points to, or def when p is nil.
func Deref(p *Float, def float64) float64 {
	if p == nil {
		return def
	}
	return float64(*p)
}
