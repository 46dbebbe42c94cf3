// Package output provides formatted output for analysis results.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Styles for terminal output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	lowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	mediumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	highStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	criticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func classStyle(c domain.RiskClass) lipgloss.Style {
	switch c {
	case domain.RiskLow:
		return lowStyle
	case domain.RiskMedium:
		return mediumStyle
	case domain.RiskHigh:
		return highStyle
	default:
		return criticalStyle
	}
}

// TableOutput renders one result as a styled terminal report.
func TableOutput(result domain.Result) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Domain Risk Assessment: " + result.Domain))
	sb.WriteString("\n\n")

	style := classStyle(result.Classification)
	sb.WriteString(fmt.Sprintf("Risk Score: %s (%s)\n",
		style.Render(fmt.Sprintf("%d/100", result.Score)),
		style.Render(strings.ToUpper(string(result.Classification)))))

	if len(result.TriggeredRules) > 0 {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render("Risk Indicators"))
		sb.WriteString("\n")
		for _, rule := range result.TriggeredRules {
			sb.WriteString(fmt.Sprintf("  • %s %s\n",
				rule.Justification,
				mutedStyle.Render(fmt.Sprintf("(+%d)", rule.Weight))))
		}
	}

	if len(result.Patterns) > 0 {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render("Patterns"))
		sb.WriteString("\n")
		for _, p := range result.Patterns {
			sb.WriteString("  " + patternStyle.Render("◆ "+p) + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Intelligence Summary"))
	sb.WriteString("\n")
	sb.WriteString(renderIntelligence(result.Intelligence))

	return sb.String()
}

func renderIntelligence(intel domain.SignalBundle) string {
	var sb strings.Builder

	age := "unknown"
	if intel.AgeDays.Known {
		age = fmt.Sprintf("%d days", intel.AgeDays.Days)
	}

	keywords := "none"
	if len(intel.TriggeredKeywords) > 0 {
		keywords = strings.Join(intel.TriggeredKeywords, ", ")
	}

	rows := [][2]string{
		{"Domain Age", age},
		{"MX Records", yesNo(intel.HasMX)},
		{"SPF Records", yesNo(intel.HasSPF)},
		{"SSL Valid", yesNo(intel.SSLValid)},
		{"Self-Signed", yesNo(intel.IsSelfSigned)},
		{"Keywords", keywords},
		{"Risky TLD", yesNo(intel.RiskyTLD)},
		{"Punycode", yesNo(intel.IsPunycode)},
	}

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", row[0], row[1]))
	}

	if len(intel.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", "Errors",
			errorStyle.Render(strings.Join(intel.Errors, "; "))))
	}

	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
