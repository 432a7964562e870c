package util

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

/*
* Trim a string field inside a bound request map.
* Missing, non-string or empty-after-trim values are errors.
 */
func GetTrimmedString(data map[string]interface{}, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", errors.New(field + " not provided")
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.New(field + " must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(field + " must not be empty")
	}
	data[field] = s
	return s, nil
}

// TrimIfExists trims the field in place when it is present.
func TrimIfExists(data map[string]interface{}, field string) error {
	if _, ok := data[field]; !ok {
		return nil
	}
	_, err := GetTrimmedString(data, field)
	return err
}

/*
* JSON numbers arrive as float64, multipart form values as strings.
* ToInt accepts both so priority/limit style fields parse either way.
 */
func ToInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// ParseDate accepts the date formats the frontend sends.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format: " + value)
}
