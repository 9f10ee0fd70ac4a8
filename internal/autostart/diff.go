package autostart

import (
	"os"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffType classifies one line of a diff
type DiffType int

const (
	DiffEqual DiffType = iota
	DiffInsert
	DiffDelete
)

// DiffLine is a single line in a rendered diff
type DiffLine struct {
	Type    DiffType
	Content string
}

// DiffResult is the line diff between two autostart documents
type DiffResult struct {
	OldPath   string
	NewPath   string
	OldExists bool
	NewExists bool
	Identical bool
	Lines     []DiffLine
	Added     int
	Removed   int
}

// DiffStrings diffs two document bodies line by line
func DiffStrings(oldText, newText string) *DiffResult {
	result := &DiffResult{OldExists: true, NewExists: true}
	diffLines(result, oldText, newText)
	return result
}

// ComputeDiff diffs two files on disk. A missing file is treated as
// empty so created and deleted entries render as pure insertions or
// deletions.
func ComputeDiff(oldPath, newPath string) (*DiffResult, error) {
	result := &DiffResult{OldPath: oldPath, NewPath: newPath}

	oldContent, oldErr := os.ReadFile(oldPath)
	result.OldExists = oldErr == nil
	newContent, newErr := os.ReadFile(newPath)
	result.NewExists = newErr == nil

	if !result.OldExists && !result.NewExists {
		result.Identical = true
		return result, nil
	}

	diffLines(result, string(oldContent), string(newContent))
	return result, nil
}

// diffLines fills result using line mode diff with semantic cleanup
func diffLines(result *DiffResult, oldText, newText string) {
	if oldText == newText {
		result.Identical = true
		return
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	diffs = dmp.DiffCleanupSemantic(diffs)

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				result.Lines = append(result.Lines, DiffLine{Type: DiffInsert, Content: line})
				result.Added++
			case diffmatchpatch.DiffDelete:
				result.Lines = append(result.Lines, DiffLine{Type: DiffDelete, Content: line})
				result.Removed++
			default:
				result.Lines = append(result.Lines, DiffLine{Type: DiffEqual, Content: line})
			}
		}
	}

	result.Identical = result.Added == 0 && result.Removed == 0
}

// Unified renders the diff in unified text form
func (d *DiffResult) Unified() string {
	var sb strings.Builder
	if d.OldPath != "" || d.NewPath != "" {
		sb.WriteString("--- " + d.OldPath + "\n")
		sb.WriteString("+++ " + d.NewPath + "\n")
	}
	for _, line := range d.Lines {
		switch line.Type {
		case DiffInsert:
			sb.WriteString("+" + line.Content + "\n")
		case DiffDelete:
			sb.WriteString("-" + line.Content + "\n")
		default:
			sb.WriteString(" " + line.Content + "\n")
		}
	}
	return sb.String()
}

// HasChanges reports whether the documents differ
func (d *DiffResult) HasChanges() bool {
	return !d.Identical
}

// Summary returns a compact +N -M change count
func (d *DiffResult) Summary() string {
	if d.Identical {
		return "No changes"
	}
	var parts []string
	if d.Added > 0 {
		parts = append(parts, "+"+strconv.Itoa(d.Added))
	}
	if d.Removed > 0 {
		parts = append(parts, "-"+strconv.Itoa(d.Removed))
	}
	return strings.Join(parts, " ")
}
