// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %s\n", record.Experience))
	if record.ContactInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", record.ContactInfo.Email))
	}
	if record.ContactInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", record.ContactInfo.Phone))
	}
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(record.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Education[i]))
		}
		if len(record.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Education)-3))
		}
		sb.WriteString("\n")
	}

	var present []string
	for _, name := range types.SectionNames {
		if record.HasSection(name) {
			present = append(present, name)
		}
	}
	sb.WriteString(fmt.Sprintf("Sections: %s", strings.Join(present, ", ")))

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the score breakdown and skill analysis of one
// match report.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %d/100\n\n", report.ATSScore))

	// Legacy reports fill SkillFrequency/KeywordsTools instead of
	// Keyword/Structure.
	b := report.ScoreBreakdown
	legacy := b.SkillFrequency > 0 || b.KeywordsTools > 0
	sb.WriteString(fmt.Sprintf("Skill match:      %5.1f\n", b.SkillMatch))
	if legacy {
		sb.WriteString(fmt.Sprintf("Skill frequency:  %5.1f\n", b.SkillFrequency))
	} else {
		sb.WriteString(fmt.Sprintf("Keyword overlap:  %5.1f\n", b.Keyword))
	}
	sb.WriteString(fmt.Sprintf("Experience:       %5.1f\n", b.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education:        %5.1f\n", b.EducationMatch))
	if legacy {
		sb.WriteString(fmt.Sprintf("Keywords/tools:   %5.1f\n", b.KeywordsTools))
	} else {
		sb.WriteString(fmt.Sprintf("Structure:        %5.1f\n", b.Structure))
	}
	sb.WriteString("\n")

	p.printSkillList(&sb, "Matched", report.SkillAnalysis.MatchedSkills)
	p.printSkillList(&sb, "Missing", report.SkillAnalysis.MissingSkills)
	p.printSkillList(&sb, "Underrepresented", report.SkillAnalysis.UnderrepresentedSkills)

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs the extracted keyword preview, with optional
// n-gram phrases.
func (p *Printer) PrintKeywords(keywords, phrases []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords (%d):\n", len(keywords)))
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}

	if len(phrases) > 0 {
		sb.WriteString(fmt.Sprintf("\nPhrases (%d):\n", len(phrases)))
		count = min(len(phrases), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", phrases[i]))
		}
		if len(phrases) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(phrases)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD PREVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the ordered advice list.
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

func (p *Printer) printSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	joined := strings.Join(skills, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s: %s\n", label, joined))
}
