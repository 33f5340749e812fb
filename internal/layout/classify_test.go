package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Table(t *testing.T) {
	sidebar := Context{Region: RegionSidebar, Y: 20}
	main := Context{Region: RegionMain, Y: 20}
	flow := Context{Region: RegionFlow, Y: 60}

	tests := []struct {
		name     string
		line     string
		ctx      Context
		expected LineClass
	}{
		{"blank", "   ", sidebar, BlankLine},
		{"name label", "NAME", sidebar, NameLabel},
		{"sidebar header", "TECHNICAL SKILLS", sidebar, SectionHeader},
		{"sidebar header too long", "PROFESSIONAL CERTIFICATIONS AND AWARDS", sidebar, PlainText},
		{"main header", "PROFESSIONAL EXPERIENCE", main, SectionHeader},
		{"main header university", "NORTH MAHARASHTRA UNIVERSITY", main, PlainText},
		{"uppercase bullet is not header", "- AWS", sidebar, BulletLine},
		{"labeled skill", "- Languages: Python, Go", sidebar, LabeledSkill},
		{"labeled skill in main", "- Cloud: AWS, GCP", main, LabeledSkill},
		{"long label is bullet", "- Reduced infrastructure spend across every region: 30%", main, BulletLine},
		{"job entry", "Senior Engineer | Acme Corp | 2020-2023", main, EntryTriplet},
		{"project entry", "Ledger | Go, Postgres", main, EntryTriplet},
		{"education is not entry", "BSc, Delhi University | 2019", main, PlainText},
		{"pipes in sidebar are text", "+1 555 | jane@example.com", sidebar, PlainText},
		{"bullet", "- Built the thing", main, BulletLine},
		{"plain", "Seasoned engineer with a bias for shipping.", main, PlainText},
		{"flow entry", "Engineer | Acme | 2021", flow, EntryTriplet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.line, tt.ctx))
		})
	}
}

func TestClassify_NameLineAfterLabel(t *testing.T) {
	ctx := Context{Region: RegionSidebar, Y: 20, AfterNameLabel: true}
	assert.Equal(t, NameLine, Classify("Jane Doe", ctx))

	ctx.Y = 120
	assert.Equal(t, PlainText, Classify("Jane Doe", ctx), "name zone is near the top only")
}

func TestClassify_NameLineByDisplayName(t *testing.T) {
	ctx := Context{Region: RegionSidebar, Y: 30, DisplayName: "Jane Doe"}
	assert.Equal(t, NameLine, Classify("Jane Doe", ctx))

	// substring occurrences are not the name line
	assert.Equal(t, PlainText, Classify("jane.doe@example.com | Jane Doe", ctx))
	assert.Equal(t, PlainText, Classify("Jane Doe Consulting", ctx))
}

func TestClassify_NameLineWithoutStructureIsText(t *testing.T) {
	ctx := Context{Region: RegionSidebar, Y: 20}
	assert.Equal(t, PlainText, Classify("Jane Doe", ctx))
}

func TestClassify_ContactBlock(t *testing.T) {
	ctx := Context{Region: RegionFlow, Y: 20, InHeaderBlock: true}
	assert.Equal(t, ContactLine, Classify("+1 555 0100 | jane@example.com", ctx))
	assert.Equal(t, SectionHeader, Classify("INTRODUCTION", ctx))

	ctx.InHeaderBlock = false
	assert.Equal(t, EntryTriplet, Classify("+1 555 0100 | jane@example.com", ctx))
}

func TestLineClass_String(t *testing.T) {
	assert.Equal(t, "entry", EntryTriplet.String())
	assert.Equal(t, "unknown", LineClass(99).String())
	assert.Equal(t, "sidebar", RegionSidebar.String())
}

func TestParseEntry(t *testing.T) {
	job := ParseEntry("Senior Engineer | Acme Corp | 2020-2023")
	assert.Equal(t, Entry{First: "Senior Engineer", Second: "Acme Corp", Third: "2020-2023"}, job)
	assert.True(t, job.IsJob())

	project := ParseEntry("Ledger | Go, Postgres")
	assert.Equal(t, "Ledger", project.First)
	assert.Equal(t, "Go, Postgres", project.Second)
	assert.False(t, project.IsJob())

	extra := ParseEntry("a | b | c | d")
	assert.Equal(t, "c", extra.Third)
}

func TestParseLabeled(t *testing.T) {
	label, detail := ParseLabeled("- Languages: Python, Go")
	assert.Equal(t, "Languages:", label)
	assert.Equal(t, "Python, Go", detail)

	label, detail = ParseLabeled("- Front-end: React: Next")
	assert.Equal(t, "Front-end:", label)
	assert.Equal(t, "React: Next", detail)
}
