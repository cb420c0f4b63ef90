package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func Email(field, value string, v Violations) {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		v[field] = "invalid_email"
	}
}

// PositiveAmount accepts a decimal string and requires it to parse > 0.
func PositiveAmount(field, value string, v Violations) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || n <= 0 {
		v[field] = "must_be_positive"
	}
}

// FutureTime accepts a datetime-local string (2006-01-02T15:04) and requires it
// to be strictly after now.
func FutureTime(field, value string, now time.Time, v Violations) {
	t, err := time.ParseInLocation("2006-01-02T15:04", strings.TrimSpace(value), now.Location())
	if err != nil {
		v[field] = "invalid_datetime"
		return
	}
	if !t.After(now) {
		v[field] = "must_be_future"
	}
}
