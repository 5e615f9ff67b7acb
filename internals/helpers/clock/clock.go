// file: internals/helpers/clock/clock.go
package clock

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock is a wall-clock minute of day (0 = 00:00, 1439 = 23:59).
// It maps to a Postgres TIME column and renders as "HH:mm" in JSON.
type Clock int

var (
	// ErrFormat: the raw string is not a valid 24-hour "HH:mm".
	ErrFormat = errors.New("clock: invalid HH:mm format")
	// ErrOrder: end is not strictly after start (zero-length and
	// cross-midnight spans are both unrepresentable).
	ErrOrder = errors.New("clock: end must be after start")
)

// Parse accepts strict 24-hour "HH:mm" (hours 00-23, minutes 00-59).
// "HH:mm:ss" from the database is tolerated; the seconds are dropped.
func Parse(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if len(s) == 8 && s[5] == ':' { // "HH:mm:ss" from a TIME column
		s = s[:5]
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return Clock(h*60 + m), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// ValidateOrder enforces end strictly after start. An end earlier than
// start is always an error, never "next day".
func ValidateOrder(start, end Clock) error {
	if end <= start {
		return fmt.Errorf("%w: %s..%s", ErrOrder, start, end)
	}
	return nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Scan accepts time.Time, []byte or string ("HH:MM[:SS]").
func (c *Clock) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*c = Clock(x.Hour()*60 + x.Minute())
		return nil
	case []byte:
		parsed, err := Parse(string(x))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case string:
		parsed, err := Parse(x)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case nil:
		*c = 0
		return nil
	default:
		return fmt.Errorf("clock: unsupported Scan type %T", v)
	}
}

// Value sends "HH:MM:SS" so a Postgres TIME column accepts it.
func (c Clock) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", c.Hour(), c.Minute()), nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GormDataType keeps AutoMigrate on a TIME column.
func (Clock) GormDataType() string { return "time" }
