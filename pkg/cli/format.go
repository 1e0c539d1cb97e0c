package cli

import "fmt"

// FormatDuration formats milliseconds to human readable string.
func FormatDuration(ms int) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	secs := float64(ms) / 1000
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}
	mins := int(secs / 60)
	secs = secs - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// FormatCount formats a count with thousands separators for terminal output.
func FormatCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	out := ""
	for n >= 1000 {
		out = fmt.Sprintf(",%03d%s", n%1000, out)
		n /= 1000
	}
	return fmt.Sprintf("%d%s", n, out)
}
