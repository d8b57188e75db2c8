package watchface

import "time"

// FormatTime renders the clock as "15:04", or "03:04" in 12 hour style.
func FormatTime(t time.Time, is24h bool) string {
	if is24h {
		return t.Format("15:04")
	}
	return t.Format("03:04")
}

// FormatDate renders t as "Mon 02 Jan".
func FormatDate(t time.Time) string {
	return t.Format("Mon 02 Jan")
}
