package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// flexString acepta un string o un número JSON; los ids del backend llegan de ambas formas.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: se esperaba string o número: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// flexTime fechas del backend: YYYY-MM-DD, RFC 3339 o el formato HTTP por defecto de Flask.
type flexTime struct {
	t *time.Time
}

var timeLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

func (f *flexTime) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		f.t = nil
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*s)); err == nil {
			f.t = &t
			return nil
		}
	}
	return fmt.Errorf("fecha con formato desconocido: %q", *s)
}

// Time devuelve la fecha o nil.
func (f flexTime) Time() *time.Time { return f.t }
