package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_HeadingLevels(t *testing.T) {
	res := Parse("# One\n## Two\n### Three\n#### Four\n##### Five")

	require.Len(t, res.Blocks, 5)
	for i, b := range res.Blocks {
		assert.Equal(t, BlockHeading, b.Type)
		assert.Equal(t, i+1, b.Level)
	}
	assert.Equal(t, "One", res.Blocks[0].Text)
	assert.Equal(t, "Five", res.Blocks[4].Text)
}

func TestParse_HeadingLevelClampedToFive(t *testing.T) {
	res := Parse("####### Deep Heading")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, 5, res.Blocks[0].Level)
	// All hash characters are stripped from the text, even past the clamp.
	assert.Equal(t, "Deep Heading", res.Blocks[0].Text)
}

func TestParse_ParagraphAccumulation(t *testing.T) {
	res := Parse("first line\nsecond line\n\nnext paragraph")

	require.Len(t, res.Blocks, 2)
	assert.Equal(t, BlockParagraph, res.Blocks[0].Type)
	assert.Equal(t, "first line second line", res.Blocks[0].Text)
	assert.Equal(t, "next paragraph", res.Blocks[1].Text)
}

func TestParse_HeadingFlushesPendingParagraph(t *testing.T) {
	res := Parse("some text\n## Heading")

	require.Len(t, res.Blocks, 2)
	assert.Equal(t, BlockParagraph, res.Blocks[0].Type)
	assert.Equal(t, BlockHeading, res.Blocks[1].Type)
}

func TestParse_FormulaDoubleBacktick(t *testing.T) {
	res := Parse("The formula is: ``Impact = (Post_Score - Pre_Score) / Pre_Score × 100``")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, BlockFormula, res.Blocks[0].Type)
	assert.Equal(t, "Impact = (Post_Score - Pre_Score) / Pre_Score × 100", res.Blocks[0].Text)
}

func TestParse_FormulaSingleBacktickFallback(t *testing.T) {
	res := Parse("inline `E = mc^2` here")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, BlockFormula, res.Blocks[0].Type)
	assert.Equal(t, "E = mc^2", res.Blocks[0].Text)
}

func TestParse_UnmatchedBacktickDropsLine(t *testing.T) {
	res := Parse("before\nstray ` tick\nafter")

	// The stray-backtick line flushes the pending paragraph and is
	// dropped; accumulation resumes cleanly afterwards.
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, "before", res.Blocks[0].Text)
	assert.Equal(t, "after", res.Blocks[1].Text)
}

func TestParse_ReferencesLiteralMarker(t *testing.T) {
	res := Parse("body text\n\nREFERENCES\nSmith, A. (2020). A study.\nJones, B. (2021). Another.")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, []string{
		"Smith, A. (2020). A study.",
		"Jones, B. (2021). Another.",
	}, res.References)
}

func TestParse_ReferenceRuleHeuristic(t *testing.T) {
	res := Parse("body\n---\nSmith, A. (2020). A study.")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "body", res.Blocks[0].Text)
	assert.Equal(t, []string{"Smith, A. (2020). A study."}, res.References)
}

func TestParse_RuleBeforeLowercaseIsNotReferences(t *testing.T) {
	res := Parse("body\n---\nmore lowercase text")

	// The heuristic only fires on an uppercase follow-up; the rule
	// itself is swallowed and flushes the pending paragraph.
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, "body", res.Blocks[0].Text)
	assert.Equal(t, "more lowercase text", res.Blocks[1].Text)
	assert.Empty(t, res.References)
}

func TestParse_TrailingRuleFlushesParagraph(t *testing.T) {
	res := Parse("body text\n---")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "body text", res.Blocks[0].Text)
	assert.Empty(t, res.References)
}

func TestParse_EmptyReferenceLinesIgnored(t *testing.T) {
	res := Parse("References\nSmith, A.\n\n   \nJones, B.")

	assert.Equal(t, []string{"Smith, A.", "Jones, B."}, res.References)
}

func TestParse_Empty(t *testing.T) {
	res := Parse("")

	assert.Empty(t, res.Blocks)
	assert.Empty(t, res.References)
}

func TestParse_FinalParagraphFlushedAtEOF(t *testing.T) {
	res := Parse("no trailing newline here")

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "no trailing newline here", res.Blocks[0].Text)
}

func TestParse_BlockOrderMatchesSourceOrder(t *testing.T) {
	res := Parse("# H\npara one\n\n``x = 1``\npara two")

	require.Len(t, res.Blocks, 4)
	assert.Equal(t, BlockHeading, res.Blocks[0].Type)
	assert.Equal(t, BlockParagraph, res.Blocks[1].Type)
	assert.Equal(t, BlockFormula, res.Blocks[2].Type)
	assert.Equal(t, BlockParagraph, res.Blocks[3].Type)
}

func TestParse_SampleDocumentRoundTrip(t *testing.T) {
	raw := `# Introduction

## Background
The integration of technology in educational settings has evolved significantly.

### Early Developments

#### Research on Early Computing

##### Specific Findings from Pilot Programs
Data from pilot programs showed a 15% improvement in mathematics scores.

` + "``Impact = (Post_Score - Pre_Score) / Pre_Score × 100``" + `

Today's educational technology landscape is characterized by adaptive learning systems.

---
American Psychological Association. (2020). Publication manual (7th ed.).
Johnson, S. (2023). AI in modern education. Technology Review, 12(3), 45-67.
Smith, A., & Brown, B. (2015). Early educational computing. JET, 28(2), 112-134.
Williams, T. (2022). Machine learning for personalized instruction. Academic Press.
`

	res := Parse(raw)

	want := []Block{
		{Type: BlockHeading, Level: 1, Text: "Introduction"},
		{Type: BlockHeading, Level: 2, Text: "Background"},
		{Type: BlockParagraph, Text: "The integration of technology in educational settings has evolved significantly."},
		{Type: BlockHeading, Level: 3, Text: "Early Developments"},
		{Type: BlockHeading, Level: 4, Text: "Research on Early Computing"},
		{Type: BlockHeading, Level: 5, Text: "Specific Findings from Pilot Programs"},
		{Type: BlockParagraph, Text: "Data from pilot programs showed a 15% improvement in mathematics scores."},
		{Type: BlockFormula, Text: "Impact = (Post_Score - Pre_Score) / Pre_Score × 100"},
		{Type: BlockParagraph, Text: "Today's educational technology landscape is characterized by adaptive learning systems."},
	}
	assert.Equal(t, want, res.Blocks)
	require.Len(t, res.References, 4)
	assert.Equal(t, "American Psychological Association. (2020). Publication manual (7th ed.).", res.References[0])
	assert.Equal(t, "Williams, T. (2022). Machine learning for personalized instruction. Academic Press.", res.References[3])
}
