package sdlprint

import "strings"

// maxDescriptionLength is the width budget for a description line; the
// indentation it will be printed under is subtracted from it.
const maxDescriptionLength = 120

// description renders a doc text as an SDL block string followed by a line
// break, or "" when there is no text. indentation prefixes the opening and
// closing quotes; firstInBlock suppresses the blank line that otherwise
// separates a described element from its preceding sibling.
func (p *printer) description(desc, indentation string, firstInBlock bool) string {
	if desc == "" {
		return ""
	}

	lines := descriptionLines(desc, maxDescriptionLength-len(indentation))

	// A short single line that cannot be confused with the closing quotes
	// gets the shorthand form.
	if len(lines) == 1 && len(lines[0]) > 0 && len(lines[0]) < 70 && !strings.HasSuffix(lines[0], `"`) {
		return indentation + `"""` + escapeQuote(lines[0]) + `"""` + "\n"
	}

	var b strings.Builder
	if indentation != "" && !firstInBlock {
		b.WriteByte('\n')
	}
	b.WriteString(indentation)
	b.WriteString(`"""`)

	hasLeadingSpace := lines[0] == "" || lines[0][0] == ' ' || lines[0][0] == '\t'
	if !hasLeadingSpace {
		b.WriteByte('\n')
	}

	// Wrapped sublines are concatenated without reinserting indentation or
	// line breaks. This loses the original paragraph structure but keeps
	// the emitted blocks identical to what existing consumers of these
	// dumps parse.
	for _, line := range lines {
		b.WriteString(escapeQuote(line))
	}

	b.WriteString(indentation)
	b.WriteString(`"""`)
	b.WriteByte('\n')
	return b.String()
}

// descriptionLines splits text at its explicit line breaks, preserving empty
// lines, and word-wraps every line longer than maxLen.
func descriptionLines(desc string, maxLen int) []string {
	var lines []string
	for _, raw := range strings.Split(desc, "\n") {
		if raw == "" {
			lines = append(lines, raw)
			continue
		}
		lines = append(lines, breakLines(raw, maxLen)...)
	}
	return lines
}

// breakLines wraps one logical line at whitespace boundaries. A line less
// than five characters over budget is not worth wrapping, and a line that
// does not yield at least two break points is left alone as well. Break
// points start at the beginning of the line or after a space and span 15 to
// maxLen-40 characters up to the next space or the end of the line; each
// wrapped subline after the first drops the space it broke at.
func breakLines(line string, maxLen int) []string {
	if len(line) < maxLen+5 {
		return []string{line}
	}

	limit := maxLen - 40
	type span struct{ start, end int }
	var matches []span
	for i := 0; i < len(line); {
		end := -1
		if line[i] == ' ' {
			end = chunkEnd(line, i+1, limit)
		}
		if end < 0 && i == 0 {
			end = chunkEnd(line, 0, limit)
		}
		if end < 0 {
			i++
			continue
		}
		matches = append(matches, span{i, end})
		i = end
	}

	if len(matches) < 2 {
		return []string{line}
	}

	sublines := []string{line[:matches[1].start]}
	for j := 1; j < len(matches); j++ {
		next := len(line)
		if j+1 < len(matches) {
			next = matches[j+1].start
		}
		sublines = append(sublines, line[matches[j].start+1:next])
	}
	return sublines
}

// chunkEnd returns the end of the longest stretch of 15 to limit characters
// beginning at start that stops right before a space or at the end of the
// line, or -1 if there is none.
func chunkEnd(line string, start, limit int) int {
	longest := limit
	if rest := len(line) - start; rest < longest {
		longest = rest
	}
	for n := longest; n >= 15; n-- {
		end := start + n
		if end == len(line) || line[end] == ' ' {
			return end
		}
	}
	return -1
}

// escapeQuote escapes every block-string delimiter occurring in line.
func escapeQuote(line string) string {
	return strings.ReplaceAll(line, `"""`, `\"""`)
}
