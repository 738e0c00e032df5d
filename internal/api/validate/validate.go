package validate

import (
	"strconv"
	"strings"
)

type ErrField struct {
	Field string
	Msg   string
}

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Fields groups messages by field name, the shape the API returns to clients.
func (e Errs) Fields() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, ef := range e {
		out[ef.Field] = append(out[ef.Field], ef.Msg)
	}
	return out
}

func (e *Errs) Add(field, msg string) { *e = append(*e, ErrField{Field: field, Msg: msg}) }

// OrNil turns an empty Errs into a nil error so callers can return it directly.
func (e Errs) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Helpers

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func Email(field, value string) *ErrField {
	at := strings.IndexByte(value, '@')
	if at < 1 || at == len(value)-1 {
		return &ErrField{Field: field, Msg: "must be a valid email address"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

// Decimal checks a non-negative fixed-point amount with at most two
// fraction digits, e.g. "49.90".
func Decimal(field, value string) *ErrField {
	bad := &ErrField{Field: field, Msg: "must be a decimal amount"}
	whole, frac, hasFrac := strings.Cut(value, ".")
	if whole == "" || len(whole) > 8 {
		return bad
	}
	for _, c := range whole {
		if c < '0' || c > '9' {
			return bad
		}
	}
	if hasFrac {
		if frac == "" || len(frac) > 2 {
			return bad
		}
		for _, c := range frac {
			if c < '0' || c > '9' {
				return bad
			}
		}
	}
	return nil
}
