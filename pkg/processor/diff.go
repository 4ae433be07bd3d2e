package processor

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change
const diffContext = 3

// diffLine is one line of a line-level diff
type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// lineDiff computes a line-level diff between two texts
func lineDiff(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []diffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, diffLine{op: d.Type, text: line})
		}
	}
	return out
}

// writeDiff writes the diff of a changed file, collapsing long unchanged runs
func (p *processor) writeDiff(result Result) error {
	if _, err := p.header.Fprintf(p.out, "--- %s\n+++ %s\n", result.Path, result.Path); err != nil {
		return err
	}

	lines := lineDiff(result.Original, result.Optimized)

	// Mark the unchanged lines within diffContext of a change
	visible := make([]bool, len(lines))
	for i, line := range lines {
		if line.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-diffContext); j <= min(len(lines)-1, i+diffContext); j++ {
			visible[j] = true
		}
	}

	skipped := false
	for i, line := range lines {
		if !visible[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := p.header.Fprintf(p.out, "@@ line %d @@\n", lineNumber(lines, i)); err != nil {
				return err
			}
			skipped = false
		}

		var err error
		switch line.op {
		case diffmatchpatch.DiffDelete:
			_, err = p.removed.Fprintf(p.out, "-%s\n", line.text)
		case diffmatchpatch.DiffInsert:
			_, err = p.added.Fprintf(p.out, "+%s\n", line.text)
		default:
			_, err = fmt.Fprintf(p.out, " %s\n", line.text)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// lineNumber returns the 1-based line of the original text at diff position i
func lineNumber(lines []diffLine, i int) int {
	n := 1
	for _, line := range lines[:i] {
		if line.op != diffmatchpatch.DiffInsert {
			n++
		}
	}
	return n
}
