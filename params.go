package main

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"
)

const maxCountryLength = 3

// paramError is a query parameter that is missing or malformed; it maps to 422.
type paramError struct {
	param  string
	reason string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("query parameter %q %s", e.param, e.reason)
}

func requiredString(q url.Values, name string) (string, error) {
	if !q.Has(name) {
		return "", &paramError{param: name, reason: "is required"}
	}
	return q.Get(name), nil
}

func requiredInt(q url.Values, name string) (int64, error) {
	if !q.Has(name) {
		return 0, &paramError{param: name, reason: "is required"}
	}
	return parseInt(q, name)
}

// optionalInt returns 0 when the parameter is absent
func optionalInt(q url.Values, name string) (int64, error) {
	if !q.Has(name) {
		return 0, nil
	}
	return parseInt(q, name)
}

func parseInt(q url.Values, name string) (int64, error) {
	n, err := strconv.ParseInt(q.Get(name), 10, 64)
	if err != nil {
		return 0, &paramError{param: name, reason: "must be an integer"}
	}
	return n, nil
}

func optionalCountry(q url.Values) (string, error) {
	country := q.Get("country")
	if utf8.RuneCountInString(country) > maxCountryLength {
		return "", &paramError{param: "country", reason: fmt.Sprintf("must be at most %d characters", maxCountryLength)}
	}
	return country, nil
}
