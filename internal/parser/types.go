package parser

// BlockType discriminates the structural category of a classified line group.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockFormula   BlockType = "formula"
)

// Block is one classified unit of document content.
// Level is only meaningful for headings and stays within 1..5.
type Block struct {
	Type  BlockType
	Level int
	Text  string
}

// Result holds the parsed body blocks and the reference entries.
// Both slices preserve source order; references are collected
// independently of the body once the references marker is seen.
type Result struct {
	Blocks     []Block
	References []string
}
