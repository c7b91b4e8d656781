package annuity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUnknownTiming = errors.New("unknown payment timing")

// Timing indicates when payments are due within each period.
// Its zero value is [End].
type Timing int

const (
	End   Timing = 0 // payments due at the end of each period
	Begin Timing = 1 // payments due at the beginning of each period
)

// ParseTiming converts a string to a payment timing.
// The following strings are accepted (case-insensitive):
//
//	"0", "end"   for End
//	"1", "begin" for Begin
func ParseTiming(s string) (Timing, error) {
	switch strings.ToLower(s) {
	case "0", "end":
		return End, nil
	case "1", "begin":
		return Begin, nil
	}
	return End, fmt.Errorf("parsing %q: %w", s, errUnknownTiming)
}

// MustParseTiming is like [ParseTiming] but panics if the string cannot be parsed.
func MustParseTiming(s string) Timing {
	t, err := ParseTiming(s)
	if err != nil {
		panic(fmt.Sprintf("ParseTiming(%q) failed: %v", s, err))
	}
	return t
}

// String implements the [fmt.Stringer] interface and returns
// "end" or "begin".
// Values other than End and Begin are formatted as "Timing(n)".
func (t Timing) String() string {
	switch t {
	case End:
		return "end"
	case Begin:
		return "begin"
	}
	return "Timing(" + strconv.Itoa(int(t)) + ")"
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseTiming].
func (t *Timing) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseTiming(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Timing.String].
func (t Timing) MarshalText() ([]byte, error) {
	switch t {
	case End, Begin:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("marshaling %v: %w", t, errUnknownTiming)
}
