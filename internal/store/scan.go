package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// scannableTime scans timestamps that arrive either as time.Time (pgx, and
// SQLite columns with a declared timestamp type) or as text (SQLite
// expressions such as RETURNING created_at).
type scannableTime struct {
	t *time.Time
}

func (s scannableTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s scannableTime) parse(v string) error {
	v = strings.TrimSuffix(v, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", v)
}
