package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BerniceZTT/product_console/controllers"
	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/utils"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 100
	tableHeight  = models.PageSize + 1
)

const deleteDescription = "Tem certeza que deseja deletar este item? Ao fazer isso todos os registros relacionados a ele serão deletados também!"

func columns(width int) []table.Column {
	if width <= 0 {
		width = defaultWidth
	}
	fixed := 12 + 12 + 14 + 14
	name := width - fixed - 12
	if name < 16 {
		name = 16
	}
	return []table.Column{
		{Title: "Nome", Width: name},
		{Title: "Validade", Width: 12},
		{Title: "Quantidade", Width: 12},
		{Title: "Valor Compra", Width: 14},
		{Title: "Valor Venda", Width: 14},
	}
}

func tableStyles() table.Styles {
	t := defaultTheme
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(t.Text).
		Background(t.Primary).
		Bold(false)
	return s
}

// syncTable 用当前页刷新表格
func (m *Model) syncTable() {
	visible := m.list.State().Visible
	rows := make([]table.Row, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, table.Row{
			p.Name,
			p.ExpiryDate,
			strconv.Itoa(p.Quantity),
			utils.FormatPrice(p.PurchasePrice),
			utils.FormatPrice(p.SalePrice),
		})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// selected 表格光标所在的产品
func (m Model) selected() (models.Product, bool) {
	visible := m.list.State().Visible
	c := m.table.Cursor()
	if c < 0 || c >= len(visible) {
		return models.Product{}, false
	}
	return visible[c], true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t := defaultTheme
	state := m.list.State()

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Lista de produtos")
	subtitle := lipgloss.NewStyle().Foreground(t.Muted).Render("Veja a lista de produtos cadastrados no sistema")

	sections := []string{title, subtitle, "", m.viewSearch(state.Query)}

	if state.Loading {
		sections = append(sections, m.spinner.View()+" Carregando...")
	} else {
		sections = append(sections, "")
	}

	sections = append(sections, m.table.View(), m.viewPagination(state))

	if n := state.Notification; n.Visible {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(t.severity(n.Severity)).
			Render(n.Message))
	}
	if m.mode == modeConfirm && state.Pending != nil {
		sections = append(sections, m.viewConfirm(*state.Pending))
	}
	if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(t.Muted).Render(m.status))
	}

	sections = append(sections, "", m.help.View(keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (m Model) viewSearch(query string) string {
	if m.mode == modeSearch || query != "" {
		return m.search.View()
	}
	return lipgloss.NewStyle().Foreground(defaultTheme.Muted).Render("/ Pesquise por um produto")
}

func (m Model) viewPagination(state controllers.ViewState) string {
	p := state.Pagination
	pages := p.Pages
	if pages == 0 {
		pages = 1
	}
	text := fmt.Sprintf("Página %d de %d · %d produtos", p.Page, pages, state.FilteredCount)
	if state.Query != "" {
		text += fmt.Sprintf(" (de %d)", len(state.Collection))
	}
	return lipgloss.NewStyle().Foreground(defaultTheme.Muted).Render(text)
}

func (m Model) viewConfirm(p models.Product) string {
	t := defaultTheme
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Warning).
		Padding(0, 1).
		Width(60)
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(p.Name),
		deleteDescription,
		"",
		lipgloss.NewStyle().Foreground(t.Muted).Render("y confirmar · n cancelar"),
	)
	return box.Render(body)
}
