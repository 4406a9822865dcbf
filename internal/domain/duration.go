package domain

import "fmt"

// FormatDuration renders a number of seconds as H:MM:SS, or M:SS below one hour.
// Negative values are shown as zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}
