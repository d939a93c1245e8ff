package jot

import (
	"strings"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented text diff of the canonical encodings of a
// and b, or the empty string when the trees are equal. Removed lines are
// prefixed with "-", added lines with "+", common lines with a space.
func Diff(a, b *ir.Node) string {
	if ir.Equal(a, b) {
		return ""
	}
	aText := encode.MustString(a) + "\n"
	bText := encode.MustString(b) + "\n"
	diffCfg := diffpatch.New()
	aRunes, bRunes, lines := diffCfg.DiffLinesToRunes(aText, bText)
	diffs := diffCfg.DiffMainRunes(aRunes, bRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range splitLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
