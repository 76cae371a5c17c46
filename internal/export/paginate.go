package export

import "strings"

// Fixed page geometry for the rendered document: a portrait A4-equivalent
// page of monospaced text.
const (
	PageWidth  = 90
	PageHeight = 54
)

// wrap breaks a single logical line into rows no wider than width,
// preferring to break on spaces. Width is measured in runes, not bytes:
// report lines carry multi-byte bullets and must not wrap early.
func wrap(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}
	var rows []string
	for len(runes) > width {
		cut := 0
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		if cut == 0 {
			cut = width
		}
		rows = append(rows, strings.TrimRight(string(runes[:cut]), " "))
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	rows = append(rows, string(runes))
	return rows
}

// Paginate splits document text into fixed-size pages. The result always
// contains at least one page so an empty report still yields a file.
func Paginate(text string) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, wrap(line, PageWidth)...)
	}

	var pages []string
	for start := 0; start < len(rows); start += PageHeight {
		end := start + PageHeight
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, strings.Join(rows[start:end], "\n"))
	}
	if len(pages) == 0 {
		pages = []string{""}
	}
	return pages
}
