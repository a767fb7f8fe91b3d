package ui

import (
	"fmt"
	"os"

	"github.com/BerniceZTT/product_console/controllers"
	"github.com/BerniceZTT/product_console/routes"
	"github.com/BerniceZTT/product_console/utils"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.table.SetWidth(msg.Width)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case controllerMsg:
		cmds = append(cmds, m.wrap(m.list.Update(msg.msg)))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncTable()

	if m.router.Current() == routes.LoginPath {
		m.quitting = true
		m.exitMessage = "Sessão encerrada. Faça login novamente."
		if n := m.list.State().Notification; n.Visible {
			m.exitMessage = n.Message
		}
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.search.Focus()
	case key.Matches(msg, keys.Next):
		m.list.NextPage()
	case key.Matches(msg, keys.Previous):
		m.list.PreviousPage()
	case key.Matches(msg, keys.Reload):
		return m.wrap(m.list.Reload())
	case key.Matches(msg, keys.Dismiss):
		m.list.DismissNotification()
	case key.Matches(msg, keys.Delete):
		if p, ok := m.selected(); ok {
			m.list.RequestDelete(p)
			m.mode = modeConfirm
		}
	case key.Matches(msg, keys.Edit):
		if p, ok := m.selected(); ok {
			m.list.EditProduct(p.ID)
			m.status = "→ " + m.router.Current()
		}
	case key.Matches(msg, keys.Export):
		m.export()
	case key.Matches(msg, keys.Profile):
		m.list.OpenProfile()
		m.status = "→ " + m.router.Current()
	case key.Matches(msg, keys.Password):
		m.list.ChangePassword()
		m.status = "→ " + m.router.Current()
	case key.Matches(msg, keys.Logout):
		m.list.Logout(m.ctx)
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Done) {
		m.mode = modeBrowse
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.list.State().Query {
		m.list.SetQuery(m.search.Value())
		m.table.SetCursor(0)
	}
	return cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Confirm):
		cmd := m.list.ConfirmDelete()
		if cmd == nil && m.list.State().Pending != nil {
			// 已有删除进行中，保留确认框
			m.status = "Aguarde a exclusão em andamento"
			return nil
		}
		m.mode = modeBrowse
		m.status = ""
		return m.wrap(cmd)
	case key.Matches(msg, keys.Cancel):
		m.mode = modeBrowse
		m.list.CancelDelete()
	}
	return nil
}

func (m *Model) export() {
	if err := exportFile(m.list, m.exportPath); err != nil {
		utils.LogError(err, map[string]interface{}{"path": m.exportPath}, "导出产品失败")
		m.status = fmt.Sprintf("Falha ao exportar: %v", err)
		return
	}
	m.status = fmt.Sprintf("Exportado para %s", m.exportPath)
}

func exportFile(list *controllers.ProductListController, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return utils.NewAppError("failed to create export file", 0, err)
	}
	if err := list.ExportAll(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
