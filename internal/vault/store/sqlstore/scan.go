package sqlstore

import (
	"fmt"
	"time"
)

// timestampLayouts are the text forms engines use for timestamps when the
// driver cannot infer a column type, e.g. sqlite RETURNING clauses.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateTime,
}

type timeScanner struct{ dst *time.Time }

func scanTime(dst *time.Time) timeScanner { return timeScanner{dst: dst} }

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into time.Time", src)
	}
}

func (s timeScanner) parse(text string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			*s.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("sqlstore: unrecognised timestamp %q", text)
}
