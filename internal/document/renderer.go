package document

import "apafmt/internal/style"

// Renderer is the document-authoring collaborator. The assembler feeds
// it fully resolved directives in render order; all side effects of
// rendering live behind this interface.
type Renderer interface {
	// AddParagraph appends one styled paragraph to the document body.
	AddParagraph(d style.Directive)

	// AddPageBreak forces a page boundary before the next paragraph.
	AddPageBreak()

	// Save persists the assembled document to path. The write must be
	// all-or-nothing: a failure may not leave a partial file behind.
	Save(path string) error
}
