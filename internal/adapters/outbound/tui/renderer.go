package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/readmedoctor/readme-doctor/internal/domain"
	"github.com/readmedoctor/readme-doctor/internal/domain/fixer"
	"github.com/readmedoctor/readme-doctor/internal/domain/scoring"
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
	lime    = lipgloss.Color("#A3E635")
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
			Width(56)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lime,
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	hintStyle     = lipgloss.NewStyle().Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 52))
)

// RenderReport formats a score report for terminal output. Sections and
// suggestions are listed alphabetically; report itself is not reordered.
func RenderReport(report *domain.ScoreReport) string {
	var b strings.Builder
	hits := slices.Sorted(slices.Values(report.Hits))
	missing := slices.Sorted(slices.Values(report.Missing))

	grade := report.Grade()
	title := headerStyle.Render("readme-doctor")
	subtitle := dimStyle.Render(displayPath(report.Path))
	color := gradeColor(grade)
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%d / %d", report.Score, domain.MaxScore))
	gradeStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")
	b.WriteString("  " + coloredBar(report.Score, 40) + "\n\n")

	b.WriteString("  " + titleStyle.Render("Present") + "\n")
	if len(hits) == 0 {
		b.WriteString("    " + dimStyle.Render("nothing yet") + "\n")
	}
	for _, s := range hits {
		renderSection(&b, s, passStyle.Render("✓"))
	}

	b.WriteString("\n  " + titleStyle.Render("Missing") + "\n")
	if len(missing) == 0 {
		b.WriteString("    " + passStyle.Render("nothing, nice work") + "\n")
	}
	for _, s := range missing {
		renderSection(&b, s, failStyle.Render("✗"))
	}

	if suggestions := Suggestions(missing); len(suggestions) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Suggestions") + "\n")
		for _, s := range suggestions {
			b.WriteString("    " + hintStyle.Render("→") + " " + s + "\n")
		}
		b.WriteString("\n    " + dimStyle.Render("run `readme-doctor fix` to append templates") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderSection(b *strings.Builder, s domain.Section, icon string) {
	weight := ""
	if r, ok := scoring.Lookup(s); ok {
		weight = dimStyle.Render(fmt.Sprintf("+%d", r.Weight))
	}
	fmt.Fprintf(b, "    %s %s %s\n", icon, padRight(Humanize(s), 16), weight)
}

// Suggestions returns one add-<section> hint per missing section.
func Suggestions(missing []domain.Section) []string {
	out := make([]string, 0, len(missing))
	for _, s := range missing {
		hint := "add-" + string(s)
		if !fixer.Fixable(s) {
			hint += dimStyle.Render(" (manual)")
		}
		out = append(out, hint)
	}
	return out
}

// Humanize turns a section id such as altImages into "alt images".
func Humanize(s domain.Section) string {
	words := camelcase.Split(string(s))
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}

// RenderFixPlan summarises a fix run.
func RenderFixPlan(plan *domain.FixPlan, rel string) string {
	var b strings.Builder
	if len(plan.Applied) == 0 {
		b.WriteString(dimStyle.Render("No changes needed") + "\n")
		return b.String()
	}

	switch {
	case plan.Written:
		b.WriteString(passStyle.Render("Wrote updates to "+rel) + "\n")
	default:
		b.WriteString(hintStyle.Render("Would update "+rel) + "\n")
	}
	for _, name := range plan.Applied {
		b.WriteString("  " + dimStyle.Render("+") + " " + name + "\n")
	}
	fmt.Fprintf(&b, "  %s %s\n",
		dimStyle.Render("score"),
		scoreDelta(plan.ScoreBefore, plan.ScoreAfter),
	)
	return b.String()
}

func scoreDelta(before, after int) string {
	out := fmt.Sprintf("%d → %d", before, after)
	if after > before {
		return out + " " + passStyle.Render(fmt.Sprintf("↑%d", after-before))
	}
	return out
}

// RenderPreview renders the markdown a dry-run fix would append.
// Sentinel comments are invisible in rendered markdown.
func RenderPreview(markdown string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

// RenderHistory formats score history for terminal output.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No score history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Score History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 44)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(day),
			faintStyle.Render(hash),
			lipgloss.NewStyle().Foreground(scoreColor(e.Score)).Render(fmt.Sprintf("%d/100", e.Score)),
			e.Grade,
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line + "\n")
	}

	return b.String()
}

// RenderRules lists the rule table with weights.
func RenderRules(cfg domain.Config) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Rules") + "\n")
	for _, r := range scoring.Rules() {
		state := passStyle.Render("on ")
		if !cfg.Enabled(r.Section) {
			state = dimStyle.Render("off")
		}
		fmt.Fprintf(&b, "    %s %s %s\n", state, padRight(string(r.Section), 14), dimStyle.Render(fmt.Sprintf("%2d", r.Weight)))
	}
	return b.String()
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	color := scoreColor(score)
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", width-filled))
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

func displayPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
