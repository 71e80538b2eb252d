// Package terminal prints panels as plain text.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"financement/internal/domain/entities"
)

const rowIndent = "  "

// Render writes panel to w, one slot per line. Empty slots are skipped.
func Render(w io.Writer, panel *entities.Panel) error {
	var b strings.Builder

	b.WriteString(panel.Title)
	b.WriteByte('\n')
	if panel.DateLine != "" {
		b.WriteString(panel.DateLine)
		b.WriteByte('\n')
	}

	if len(panel.Rows) == 0 {
		if panel.NoData != "" {
			b.WriteByte('\n')
			b.WriteString(panel.NoData)
			b.WriteByte('\n')
		}
	}
	for _, row := range panel.Rows {
		b.WriteByte('\n')
		b.WriteString(row.Title)
		b.WriteByte('\n')
		for _, line := range []string{row.Supporters, row.Opponents, row.Share} {
			if line == "" {
				continue
			}
			b.WriteString(rowIndent)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if panel.UpdateLine != "" || panel.Source != nil {
		b.WriteByte('\n')
	}
	if panel.UpdateLine != "" {
		b.WriteString(panel.UpdateLine)
		b.WriteByte('\n')
	}
	if panel.Source != nil {
		fmt.Fprintf(&b, "%s (%s)\n", panel.Source.Text, panel.Source.URL)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
