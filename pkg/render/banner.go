package render

import (
	"strings"

	"github.com/fourline/fourline/pkg/domain"
)

// Banner returns the fourline startup banner, alternating the two token
// colors across the rows.
func (r *Renderer) Banner() string {
	rows := []string{
		`  __                  _ _            `,
		` / _| ___  _   _ _ __| (_)_ __   ___ `,
		`| |_ / _ \| | | | '__| | | '_ \ / _ \`,
		`|  _| (_) | |_| | |  | | | | | |  __/`,
		`|_|  \___/ \__,_|_|  |_|_|_| |_|\___|`,
	}
	var b strings.Builder
	b.WriteString("\n")
	for i, row := range rows {
		color := domain.Red
		if i%2 == 1 {
			color = domain.Yellow
		}
		b.WriteString(r.output.String(row).Foreground(r.ansi(color)).String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
