package ui

import (
	"context"

	"github.com/BerniceZTT/product_console/controllers"
	"github.com/BerniceZTT/product_console/routes"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirm
)

// Model 产品列表界面
type Model struct {
	ctx        context.Context
	list       *controllers.ProductListController
	router     *routes.Router
	exportPath string

	mode        mode
	width       int
	height      int
	status      string
	exitMessage string
	quitting    bool

	// Components
	search  textinput.Model
	table   table.Model
	spinner spinner.Model
	help    help.Model
}

// controllerMsg 控制器命令的结果
type controllerMsg struct {
	msg controllers.Msg
}

// NewModel 创建界面模型，router 需要和控制器使用同一个实例
func NewModel(ctx context.Context, list *controllers.ProductListController, router *routes.Router, exportPath string) Model {
	search := textinput.New()
	search.Placeholder = "Pesquise por um produto"
	search.Prompt = "/ "
	search.CharLimit = 64
	search.Cursor.SetMode(cursor.CursorStatic)

	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	t.KeyMap = table.KeyMap{
		LineUp:   keys.Up,
		LineDown: keys.Down,
	}
	t.SetStyles(tableStyles())

	return Model{
		ctx:        ctx,
		list:       list,
		router:     router,
		exportPath: exportPath,
		search:     search,
		table:      t,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
	}
}

// Init 进入页面
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.wrap(m.list.Mount(m.ctx)), m.spinner.Tick)
}

// ExitMessage 程序退出时打印的信息
func (m Model) ExitMessage() string {
	return m.exitMessage
}

// wrap 将控制器命令转换为 tea 命令
func (m Model) wrap(cmd controllers.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return controllerMsg{msg: cmd(ctx)}
	}
}
