package client

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Dates go over the wire as full ISO-8601 UTC timestamps with millisecond
// precision.
const wireTimeFormat = "2006-01-02T15:04:05.000Z07:00"

func formatWireTime(t time.Time) string {
	return t.UTC().Format(wireTimeFormat)
}

type pair struct {
	key   string
	value string
}

// query assembles the parameter list in declaration order. Required setters
// record a missing name instead of a value when the argument carries the
// zero value; optional setters skip nil pointers silently. The first missing
// name surfaces as a *RequiredParamError before any request is built.
type query struct {
	pairs   []pair
	missing []string
}

func newQuery() *query {
	return &query{}
}

func (q *query) add(key, value string) {
	q.pairs = append(q.pairs, pair{key: key, value: value})
}

func (q *query) Int(key string, v int) *query {
	if v == 0 {
		q.missing = append(q.missing, key)
		return q
	}
	q.add(key, strconv.Itoa(v))
	return q
}

// Float has no missing state; zero is a legitimate amount.
func (q *query) Float(key string, v float64) *query {
	q.add(key, strconv.FormatFloat(v, 'f', -1, 64))
	return q
}

func (q *query) Str(key, v string) *query {
	if v == "" {
		q.missing = append(q.missing, key)
		return q
	}
	q.add(key, v)
	return q
}

func (q *query) Date(key string, v time.Time) *query {
	if v.IsZero() {
		q.missing = append(q.missing, key)
		return q
	}
	q.add(key, formatWireTime(v))
	return q
}

// Bool has no missing state; both values are meaningful.
func (q *query) Bool(key string, v bool) *query {
	q.add(key, strconv.FormatBool(v))
	return q
}

func (q *query) OptInt(key string, v *int) *query {
	if v != nil {
		q.add(key, strconv.Itoa(*v))
	}
	return q
}

func (q *query) OptFloat(key string, v *float64) *query {
	if v != nil {
		q.add(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
	return q
}

func (q *query) OptStr(key string, v *string) *query {
	if v != nil {
		q.add(key, *v)
	}
	return q
}

func (q *query) OptDate(key string, v *time.Time) *query {
	if v != nil {
		q.add(key, formatWireTime(*v))
	}
	return q
}

func (q *query) OptBool(key string, v *bool) *query {
	if v != nil {
		q.add(key, strconv.FormatBool(*v))
	}
	return q
}

func (q *query) err() error {
	if len(q.missing) > 0 {
		return &RequiredParamError{Param: q.missing[0]}
	}
	return nil
}

// encode renders "k=v&k=v" in declaration order with no trailing separator.
func (q *query) encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(escapeValue(p.value))
	}
	return b.String()
}

// escapeValue percent-encodes a value the way encodeURIComponent does:
// spaces become %20, not +.
func escapeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
