package style

import (
	"strings"

	"apafmt/internal/parser"
)

// indentStep is the standard APA indent unit in inches.
const indentStep = 0.5

// MapBody converts parsed blocks into layout directives with one-block
// lookahead. A level 4 or 5 heading immediately followed by a paragraph
// merges into a single run-in directive consuming both blocks; the
// cursor then advances past the paragraph.
func MapBody(blocks []parser.Block) []Directive {
	var out []Directive
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		switch b.Type {
		case parser.BlockHeading:
			if b.Level >= 4 && i+1 < len(blocks) && blocks[i+1].Type == parser.BlockParagraph {
				out = append(out, Directive{
					Lead:       b.Text + ". ",
					LeadItalic: b.Level == 5,
					Text:       blocks[i+1].Text,
					LeftIndent: indentStep,
				})
				i++
				continue
			}
			out = append(out, headingDirective(b))

		case parser.BlockParagraph:
			out = append(out, Directive{Text: b.Text, FirstLineIndent: indentStep})

		case parser.BlockFormula:
			out = append(out, Directive{Text: b.Text, Alignment: AlignCenter, Italic: true})
		}
	}
	return out
}

func headingDirective(b parser.Block) Directive {
	switch b.Level {
	case 1:
		return Directive{Text: b.Text, Alignment: AlignCenter, Bold: true}
	case 2:
		return Directive{Text: b.Text, Alignment: AlignLeft, Bold: true}
	case 3:
		return Directive{Text: b.Text, Alignment: AlignLeft, Bold: true, Italic: true}
	default:
		// Standalone run-in heading with no paragraph to merge into.
		text := b.Text
		if !strings.HasSuffix(text, ".") {
			text += "."
		}
		return Directive{
			Text:       text,
			Bold:       true,
			Italic:     b.Level == 5,
			LeftIndent: indentStep,
		}
	}
}

// MapReferences renders the hanging-indent reference list. When at least
// one non-blank entry exists, a centered bold References heading leads
// the list; blank entries are skipped entirely.
func MapReferences(entries []string) []Directive {
	var list []Directive
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		list = append(list, Directive{
			Text:            e,
			LeftIndent:      indentStep,
			FirstLineIndent: -indentStep,
		})
	}
	if len(list) == 0 {
		return nil
	}
	heading := Directive{Text: "References", Alignment: AlignCenter, Bold: true}
	return append([]Directive{heading}, list...)
}

// TitlePage maps title data onto the fixed APA title-page layout: three
// blank lines, the centered bold title, one blank line, then the byline
// fields in fixed order. Absent or empty fields are skipped without a
// placeholder.
func TitlePage(td TitleData) []Directive {
	out := []Directive{{}, {}, {}}
	out = append(out, Directive{Text: td.Title, Alignment: AlignCenter, Bold: true})
	out = append(out, Directive{})
	for _, field := range []string{td.Author, td.Institution, td.Course, td.Instructor, td.Date} {
		if strings.TrimSpace(field) == "" {
			continue
		}
		out = append(out, Directive{Text: field, Alignment: AlignCenter})
	}
	return out
}
