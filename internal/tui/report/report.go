// ABOUTME: Formats calculation results for the terminal
// ABOUTME: Plain "Output Statistics" text plus lipgloss panels and sweep tables

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/tui/styles"
)

// WriteStatistics prints the result block with ten decimal places, set off
// by a blank line on each side:
//
//	Output Statistics:
//	Availability of configuration: 0.9720000000
//
// MTBF and MTTR lines follow in rates mode.
func WriteStatistics(w io.Writer, r models.CalculationResponse) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Statistics:")
	fmt.Fprintf(w, "Availability of configuration: %.10f\n", r.Availability)
	if r.MTBF != nil {
		fmt.Fprintf(w, "MTBF of configuration: %.10f\n", *r.MTBF)
	}
	if r.MTTR != nil {
		fmt.Fprintf(w, "MTTR of configuration: %.10f\n", *r.MTTR)
	}
	fmt.Fprintln(w)
}

// FormatNines renders the nines count, or "perfect" when availability is 1
func FormatNines(nines *float64) string {
	if nines == nil {
		return "perfect"
	}
	return strconv.FormatFloat(*nines, 'f', 2, 64)
}

// Render returns a styled panel for one result
func Render(r models.CalculationResponse) string {
	var sb strings.Builder

	title := fmt.Sprintf("%s configuration", r.Label())
	if r.Name != "" {
		title = fmt.Sprintf("%s (%s)", r.Name, r.Label())
	}
	sb.WriteString(styles.Title.Render(title + " " + styles.GradeBadge(r.Nines)))
	sb.WriteString("\n")

	grade := styles.ForNines(r.Nines)
	rows := [][2]string{
		{"Availability", grade.Render(fmt.Sprintf("%.10f", r.Availability))},
	}
	if r.MTBF != nil {
		rows = append(rows, [2]string{"MTBF", styles.ValueStyle.Render(fmt.Sprintf("%.10f", *r.MTBF))})
	}
	if r.MTTR != nil {
		rows = append(rows, [2]string{"MTTR", styles.ValueStyle.Render(fmt.Sprintf("%.10f", *r.MTTR))})
	}
	rows = append(rows,
		[2]string{"Nines", grade.Render(FormatNines(r.Nines))},
		[2]string{"Downtime/year", styles.ValueStyle.Render(r.DowntimePerYear)},
	)

	for _, row := range rows {
		sb.WriteString(styles.KeyStyle.Width(15).Render(row[0]))
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}

	return styles.Panel.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderSweep returns a table with one row per need
func RenderSweep(resp models.SweepResponse) string {
	headers := []string{"Need", "Config", "Availability", "Nines", "Downtime/year"}
	if resp.Mode == "rates" {
		headers = append(headers, "MTBF", "MTTR")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Foreground(styles.Primary).Bold(true)
			}
			if col == 2 || col == 3 {
				return base.Foreground(styles.ForNines(resp.Results[row].Nines).GetForeground())
			}
			return base
		})

	for _, r := range resp.Results {
		cells := []string{
			strconv.Itoa(r.Need),
			r.Label(),
			fmt.Sprintf("%.10f", r.Availability),
			FormatNines(r.Nines),
			r.DowntimePerYear,
		}
		if resp.Mode == "rates" {
			cells = append(cells, formatOptional(r.MTBF), formatOptional(r.MTTR))
		}
		t.Row(cells...)
	}

	return t.String()
}

// RenderBatch returns a table summarising every batch item
func RenderBatch(resp models.BatchResponse) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		Headers("#", "Name", "Config", "Availability", "Nines", "Result").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Foreground(styles.Primary).Bold(true)
			}
			if col == 5 && resp.Items[row].Error != "" {
				return base.Foreground(styles.Danger)
			}
			return base
		})

	for i, item := range resp.Items {
		label := fmt.Sprintf("%d-of-%d", item.Request.Need, item.Request.Have)
		if item.Result == nil {
			t.Row(strconv.Itoa(i+1), item.Request.Name, label, "-", "-", item.Error)
			continue
		}
		t.Row(
			strconv.Itoa(i+1),
			item.Result.Name,
			label,
			fmt.Sprintf("%.10f", item.Result.Availability),
			FormatNines(item.Result.Nines),
			"ok",
		)
	}

	summary := fmt.Sprintf("%d succeeded, %d failed", resp.Succeeded, resp.Failed)
	return t.String() + "\n" + styles.Subtitle.Render(summary)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}
