package screen

import (
	"strconv"
	"strings"
)

// Form-value parsing helpers. Select options and numeric inputs arrive as
// strings; foreign keys and amounts are converted here, right before the
// payload leaves the screen.

func parseID(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseIDPtr(v string) *int64 {
	if n, ok := parseID(v); ok {
		return &n
	}
	return nil
}

func parseAmountPtr(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &n
}

func formatAmount(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}

func formatIDPtr(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func blank(v string) bool { return strings.TrimSpace(v) == "" }
