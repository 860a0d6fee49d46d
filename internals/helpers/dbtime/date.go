// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate reads YYYY-MM-DD into a UTC midnight datatypes.Date, so the
// same day always compares equal in the database.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// Normalize drops the clock and zone of d.
func Normalize(d datatypes.Date) datatypes.Date {
	y, m, day := time.Time(d).Date()
	return datatypes.Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
