package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"finassist/internal/chat"
)

var (
	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2)

	datumCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1).
			MarginLeft(2)

	datumTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	datumLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			PaddingLeft(2)
)

// renderResponses prints every response item of one assistant turn.
func renderResponses(responses []chat.Response) {
	for _, response := range responses {
		switch response.Kind {
		case chat.KindFinancialDatum:
			fmt.Println(renderDatum(response.Datum))
		default:
			fmt.Println(assistantStyle.Render(response.Text))
		}
	}
}

// renderDatum draws one financial datum as a bordered card.
func renderDatum(d chat.FinancialDatum) string {
	var b strings.Builder

	title := d.Title
	if title == "" {
		title = d.Code
	}
	b.WriteString(datumTitleStyle.Render(title))
	if d.Code != "" && d.Code != title {
		b.WriteString(" " + datumLabelStyle.Render("("+d.Code+")"))
	}
	b.WriteString("\n")

	if d.Description != "" {
		b.WriteString(d.Description + "\n")
	}
	if d.Value != "" {
		b.WriteString(datumLabelStyle.Render("Valor:     ") + d.Value + "\n")
	}
	if d.ChangePct != "" {
		b.WriteString(datumLabelStyle.Render("Variação:  ") + d.ChangePct + "\n")
	}
	if d.Date != "" {
		b.WriteString(datumLabelStyle.Render("Data:      ") + d.Date + "\n")
	}
	if d.Source != "" {
		b.WriteString(datumLabelStyle.Render("Fonte:     ") + d.Source)
	}

	return datumCardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderFailure shows a generic failure message; internal error text never
// reaches the chat surface.
func renderFailure() {
	fmt.Println(errorStyle.Render("Algo deu errado. Tente novamente em instantes."))
}
