package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	doubleTickRe = regexp.MustCompile("``(.+?)``")
	singleTickRe = regexp.MustCompile("`(.+?)`")
)

// Parse classifies raw markdown-style text into body blocks and reference
// entries in a single left-to-right pass. It is total: malformed markup
// degrades to the documented fallback (drop or reclassify) and never fails.
//
// Classification rules, in evaluation order per line:
//  1. A trimmed "references" line (case-insensitive), or a bare "---" whose
//     next non-empty line starts with an uppercase letter, switches the
//     parser into reference mode. The marker line itself is not emitted.
//  2. In reference mode every non-empty trimmed line is a reference entry.
//  3. A run of leading '#' makes a heading; the level is the run length
//     clamped to 5.
//  4. A line containing a backtick is a formula. A ``-delimited span is
//     preferred over a `-delimited one; a stray backtick with no closing
//     delimiter drops the line.
//  5. Anything else non-empty accumulates into the current paragraph.
//  6. Blank lines (and horizontal rules) flush the accumulated paragraph,
//     joining its lines with single spaces.
func Parse(raw string) Result {
	var res Result
	lines := strings.Split(raw, "\n")

	inReferences := false
	var paragraph []string

	flush := func() {
		if len(paragraph) > 0 {
			res.Blocks = append(res.Blocks, Block{
				Type: BlockParagraph,
				Text: strings.Join(paragraph, " "),
			})
			paragraph = nil
		}
	}

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		if strings.EqualFold(stripped, "references") || (stripped == "---" && i+1 < len(lines)) {
			if stripped == "---" {
				// Peek ahead: references usually lead with an author
				// name, so the first non-empty line after the rule
				// starting with an uppercase letter is the signal.
				for _, future := range lines[i+1:] {
					f := strings.TrimSpace(future)
					if f == "" {
						continue
					}
					if unicode.IsUpper([]rune(f)[0]) {
						inReferences = true
					}
					break
				}
			} else {
				inReferences = true
			}
			flush()
			continue
		}

		if inReferences {
			if stripped != "" {
				res.References = append(res.References, stripped)
			}
			continue
		}

		switch {
		case strings.HasPrefix(stripped, "#"):
			flush()
			count := 0
			for _, ch := range stripped {
				if ch != '#' {
					break
				}
				count++
			}
			level := count
			if level > 5 {
				level = 5
			}
			res.Blocks = append(res.Blocks, Block{
				Type:  BlockHeading,
				Level: level,
				Text:  strings.TrimSpace(stripped[count:]),
			})

		case strings.Contains(stripped, "`"):
			flush()
			m := doubleTickRe.FindStringSubmatch(stripped)
			if m == nil {
				m = singleTickRe.FindStringSubmatch(stripped)
			}
			if m != nil {
				res.Blocks = append(res.Blocks, Block{Type: BlockFormula, Text: m[1]})
			}
			// No complete delimiter pair: the line is dropped.

		case stripped != "" && !strings.HasPrefix(stripped, "---"):
			paragraph = append(paragraph, stripped)

		default:
			flush()
		}
	}

	flush()
	return res
}
