package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// the banner table header and its separator row, dashes sized to each header cell
var bannerHeader = [][3]string{
	{"Switches", "Default", "Desc"},
	{"--------", "-------", "----"},
}

// Fail prints the banner to stderr followed by an error message, then exits
// with non-zero status.
func (p *Parser) Fail(msg string) {
	p.WriteBanner(os.Stderr)
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(-1)
}

// Banner returns the usage table for the compiled specs as a string.
func (p *Parser) Banner() string {
	var b strings.Builder
	p.WriteBanner(&b)
	return b.String()
}

// WriteBanner writes the usage table to w: a "Usage:" line, a blank line,
// and one row per option with the switches, the stringified default, and the
// doc string. Every column is padded to the width of its longest cell.
func (p *Parser) WriteBanner(w io.Writer) {
	fmt.Fprint(w, "Usage:\n\n")

	rows := append([][3]string{}, bannerHeader...)
	for _, opt := range p.opts {
		var def string
		if opt.hasDefault {
			def = fmt.Sprintf("%v", opt.def)
		}
		rows = append(rows, [3]string{strings.Join(opt.switches, ", "), def, opt.doc})
	}

	var widths [3]int
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %-*s\n",
			widths[0], row[0], widths[1], row[1], widths[2], row[2])
	}
}
