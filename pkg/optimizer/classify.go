package optimizer

import "strings"

const (
	keywordImport = "import"
	keywordFrom   = "from"
	keywordAs     = "as"
)

// candidate is an import-looking line inside the import block
type candidate struct {
	index int
	text  string // trimmed line
}

// block is the result of classifying a source text
type block struct {
	candidates []candidate
	body       []string // trailing lines, verbatim
}

// splitLines splits text into lines the way editors count them: a final newline does not
// start an extra empty line and a carriage return before the newline is not part of the line
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// classify scans the leading import block of src. The block ends at the first line that is
// neither blank nor an import line; that line and everything after it is the trailing body.
func classify(src string) block {
	var b block
	lines := splitLines(src)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !isImportLine(trimmed) {
			b.body = lines[i:]
			break
		}
		b.candidates = append(b.candidates, candidate{index: i, text: trimmed})
	}
	return b
}

// isImportLine reports whether a trimmed line starts with the import keyword
func isImportLine(trimmed string) bool {
	return hasWordAt(trimmed, 0, keywordImport)
}

// isIdentChar reports whether c can be part of a JavaScript identifier (ASCII subset)
func isIdentChar(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_' || c == '$'
}

// hasWordAt reports whether word appears at position i of s as a whole word
func hasWordAt(s string, i int, word string) bool {
	if i < 0 || !strings.HasPrefix(s[i:], word) {
		return false
	}
	if i > 0 && isIdentChar(s[i-1]) {
		return false
	}
	end := i + len(word)
	return end >= len(s) || !isIdentChar(s[end])
}

// indexWord returns the index of the first whole-word occurrence of word in s, or -1
func indexWord(s, word string) int {
	return indexWordFrom(s, word, 0)
}

// indexWordFrom is like indexWord but ignores occurrences starting before offset
func indexWordFrom(s, word string, offset int) int {
	if offset > len(s) {
		return -1
	}
	for {
		i := strings.Index(s[offset:], word)
		if i < 0 {
			return -1
		}
		if hasWordAt(s, offset+i, word) {
			return offset + i
		}
		offset += i + 1
	}
}
