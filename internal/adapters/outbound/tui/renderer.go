// Package tui renders analysis, plan and impact results for the terminal.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fileStyle  = lipgloss.NewStyle().Foreground(dim)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAnalysis formats a scanned repository structure.
func RenderAnalysis(analysis *domain.Analysis) string {
	var b strings.Builder

	title := headerStyle.Render("mongoshift")
	subtitle := dimStyle.Render("JPA → MongoDB Source Analysis")
	counts := fmt.Sprintf("%d entities  %d repositories  %d configs",
		len(analysis.Entities), len(analysis.Repositories), len(analysis.Configurations))
	countsStyled := titleStyle.Render(counts)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + countsStyled))
	b.WriteString("\n\n")

	if len(analysis.Entities) > 0 {
		b.WriteString("  " + titleStyle.Render("Entities") + "\n\n")
		for _, e := range analysis.Entities {
			renderEntity(&b, e)
		}
	}

	if len(analysis.Repositories) > 0 {
		b.WriteString("  " + titleStyle.Render("Repositories") + "\n\n")
		for _, r := range analysis.Repositories {
			renderRepository(&b, r)
		}
	}

	if len(analysis.Configurations) > 0 {
		b.WriteString("  " + titleStyle.Render("Configuration Files") + "\n\n")
		for _, c := range analysis.Configurations {
			fmt.Fprintf(&b, "    %s %s %s\n",
				warnStyle.Render("●"),
				filepath.Base(c.FilePath),
				dimStyle.Render(c.FileType))
		}
		b.WriteString("\n")
	}

	if len(analysis.Relationships) > 0 {
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Relationships") + "\n\n")
		for _, rel := range analysis.Relationships {
			fmt.Fprintf(&b, "    %s %s %s %s %s\n",
				rel.SourceEntity,
				faintStyle.Render("──"),
				dimStyle.Render(rel.Kind),
				faintStyle.Render("──▶"),
				rel.TargetEntity)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderEntity(b *strings.Builder, e domain.SourceEntity) {
	var rels int
	for _, f := range e.Fields {
		if f.IsRelationship {
			rels++
		}
	}
	detail := fmt.Sprintf("%d fields", len(e.Fields))
	if rels > 0 {
		detail += fmt.Sprintf(", %d relationships", rels)
	}
	fmt.Fprintf(b, "    %s %s  %s\n",
		passStyle.Render("●"),
		padRight(e.Name, 24),
		dimStyle.Render(detail))
	fmt.Fprintf(b, "      %s\n", fileStyle.Render(shortenPath(e.FilePath)))
}

func renderRepository(b *strings.Builder, r domain.SourceRepository) {
	detail := fmt.Sprintf("%d methods", len(r.Methods))
	if r.EntityName != "" {
		detail += "  entity: " + r.EntityName
	}
	fmt.Fprintf(b, "    %s %s  %s\n",
		passStyle.Render("●"),
		padRight(r.Name, 24),
		dimStyle.Render(detail))
	fmt.Fprintf(b, "      %s\n", fileStyle.Render(shortenPath(r.FilePath)))
}

// RenderPlan formats a reconciled migration plan.
func RenderPlan(plan *domain.MigrationPlan) string {
	var b strings.Builder

	title := headerStyle.Render("mongoshift")
	subtitle := dimStyle.Render("MongoDB Migration Plan")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + adviceTag(plan.AdviceStatus)))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Summary") + "\n\n")
	for _, line := range strings.Split(strings.TrimSpace(plan.Summary), "\n") {
		b.WriteString("    " + dimStyle.Render(line) + "\n")
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	b.WriteString("  " + titleStyle.Render("Collections") + "\n\n")
	for _, c := range plan.Schema.Collections {
		fmt.Fprintf(&b, "    %s %s  %s\n",
			passStyle.Render("●"),
			padRight(c.Name, 24),
			dimStyle.Render(fmt.Sprintf("%d fields", len(c.Fields))))
	}
	b.WriteString("\n")
	if plan.Schema.EmbeddingStrategy != "" {
		b.WriteString("    " + dimStyle.Render("Embedding: "+firstLine(plan.Schema.EmbeddingStrategy)) + "\n\n")
	}

	b.WriteString("  " + titleStyle.Render("Migration Steps") + "\n\n")
	for _, s := range plan.Steps {
		fmt.Fprintf(&b, "    %s %s\n",
			warnStyle.Render(fmt.Sprintf("%2d.", s.Number)),
			s.Title)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s  %s transformations, %s concepts\n\n",
		titleStyle.Render("Also planned:"),
		passStyle.Render(fmt.Sprintf("%d", len(plan.Transformations))),
		passStyle.Render(fmt.Sprintf("%d", len(plan.Concepts))))

	if plan.AdviceStatus != domain.AdviceOK && plan.AdviceReason != "" {
		b.WriteString("    " + faintStyle.Render(plan.AdviceReason) + "\n\n")
	}

	return b.String()
}

func adviceTag(status domain.AdviceStatus) string {
	switch status {
	case domain.AdviceOK:
		return passStyle.Render("advisor: ok")
	case domain.AdviceDegraded:
		return warnStyle.Render("advisor: degraded")
	default:
		return failStyle.Render("advisor: unavailable, using defaults")
	}
}

// RenderImpact formats a file impact report.
func RenderImpact(report *domain.ImpactReport) string {
	var b strings.Builder
	s := report.Summary

	title := headerStyle.Render("mongoshift")
	subtitle := dimStyle.Render("Migration Impact")
	effort := titleStyle.Render(fmt.Sprintf("%d files  ~%g hours", s.TotalFiles, s.EstimatedEffortHours))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + effort))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Complexity") + "\n\n")
	renderComplexityRow(&b, "high", s.HighComplexity, s.TotalFiles, failStyle)
	renderComplexityRow(&b, "medium", s.MediumComplexity, s.TotalFiles, warnStyle)
	renderComplexityRow(&b, "low", s.LowComplexity, s.TotalFiles, passStyle)
	b.WriteString("\n  " + separatorLine + "\n\n")

	b.WriteString("  " + titleStyle.Render("Impacted Files") + "\n\n")
	for _, fc := range report.Files {
		fmt.Fprintf(&b, "    %s %s  %s\n",
			complexityIcon(fc.Complexity),
			padRight(filepath.Base(fc.FilePath), 34),
			dimStyle.Render(fc.ChangeType))
		fmt.Fprintf(&b, "      %s\n", fileStyle.Render(shortenPath(fc.FilePath)))
	}
	b.WriteString("\n")

	return b.String()
}

func renderComplexityRow(b *strings.Builder, label string, count, total int, style lipgloss.Style) {
	pct := 0
	if total > 0 {
		pct = count * 100 / total
	}
	fmt.Fprintf(b, "    %s %s %s\n",
		style.Render(padRight(label, 8)),
		coloredBar(pct, 20, style),
		dimStyle.Render(fmt.Sprintf("%d", count)))
}

func complexityIcon(c domain.Complexity) string {
	switch c {
	case domain.ComplexityHigh:
		return failStyle.Render("●")
	case domain.ComplexityMedium:
		return warnStyle.Render("●")
	default:
		return passStyle.Render("●")
	}
}

// RenderValidation formats one validation check result.
func RenderValidation(name string, result domain.ValidationResult) string {
	var b strings.Builder

	if result.Success {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			passStyle.Render("✓"),
			titleStyle.Render(name),
			dimStyle.Render(result.Message))
	} else {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			failStyle.Render("✗"),
			titleStyle.Render(name),
			dimStyle.Render(result.Message))
		if result.Kind != "" {
			fmt.Fprintf(&b, "      %s\n", faintStyle.Render(result.Kind))
		}
	}

	for _, key := range []string{"server_version", "issues", "suggestions"} {
		if v, ok := result.Details[key]; ok {
			fmt.Fprintf(&b, "      %s %v\n", faintStyle.Render(key+":"), v)
		}
	}

	return b.String()
}

// RenderHistory formats recorded pipeline runs.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			fmt.Sprintf("%de/%dr/%dc", e.Entities, e.Repositories, e.Configurations),
			warnStyle.Render(fmt.Sprintf("~%gh", e.EffortHours)))
	}

	b.WriteString("\n")
	return b.String()
}

func coloredBar(pct, width int, style lipgloss.Style) string {
	filled := max(0, min(pct*width/100, width))
	empty := width - filled

	filledStr := style.Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
