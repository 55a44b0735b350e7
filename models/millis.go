package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Millis is an instant expressed as milliseconds since the Unix epoch.
// Stored values use the full int64 range, which can exceed what a JSON
// number survives in JavaScript clients, so it marshals to a decimal
// string. Input is accepted as either a number or a numeric string.
type Millis int64

func (m Millis) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatInt(int64(m), 10)), nil
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid millisecond timestamp %q", s)
	}
	*m = Millis(v)
	return nil
}

// Time converts the instant to a time.Time.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// MillisOf truncates a time.Time to epoch milliseconds.
func MillisOf(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

func (m Millis) String() string {
	return strconv.FormatInt(int64(m), 10)
}
