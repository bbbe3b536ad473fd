package document

import (
	"fmt"
	"strings"

	"apafmt/internal/parser"
	"apafmt/internal/style"
)

// ValidationError reports a missing or blank required input field. It is
// returned before any rendering begins.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing or empty", e.Field)
}

// Assembler sequences the title page, body, and reference list onto a
// Renderer in one linear pass.
type Assembler struct {
	renderer Renderer
}

func NewAssembler(r Renderer) *Assembler {
	return &Assembler{renderer: r}
}

// Assemble parses raw, maps it to directives, renders the document, and
// persists it to outPath. Parsing and mapping are total; only the title
// validation and the final save can fail.
func (a *Assembler) Assemble(td style.TitleData, raw string, outPath string) error {
	if strings.TrimSpace(td.Title) == "" {
		return &ValidationError{Field: "title"}
	}

	result := parser.Parse(raw)

	for _, d := range style.TitlePage(td) {
		a.renderer.AddParagraph(d)
	}
	a.renderer.AddPageBreak()

	for _, d := range style.MapBody(result.Blocks) {
		a.renderer.AddParagraph(d)
	}

	if refs := style.MapReferences(result.References); len(refs) > 0 {
		a.renderer.AddPageBreak()
		for _, d := range refs {
			a.renderer.AddParagraph(d)
		}
	}

	return a.renderer.Save(outPath)
}
