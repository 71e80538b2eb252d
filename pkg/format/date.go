package format

import "strings"

// FormatUpdateDate turns "2026-02-06 11:38" into "06.02". Empty input gives
// an empty string; input whose date part is not dash-separated is returned
// unchanged.
func FormatUpdateDate(ts string) string {
	if ts == "" {
		return ""
	}
	fields := strings.Fields(ts)
	if len(fields) == 0 {
		return ts
	}
	parts := strings.Split(fields[0], "-")
	if len(parts) < 3 {
		return ts
	}
	return parts[2] + "." + parts[1]
}
