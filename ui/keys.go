package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Search   key.Binding
	Next     key.Binding
	Previous key.Binding
	Up       key.Binding
	Down     key.Binding
	Delete   key.Binding
	Edit     key.Binding
	Export   key.Binding
	Reload   key.Binding
	Dismiss  key.Binding
	Profile  key.Binding
	Password key.Binding
	Logout   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Done     key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "pesquisar")),
	Next:     key.NewBinding(key.WithKeys("n", "right", "pgdown"), key.WithHelp("n/→", "próxima")),
	Previous: key.NewBinding(key.WithKeys("p", "left", "pgup"), key.WithHelp("p/←", "anterior")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "descer")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "deletar")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
	Export:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exportar")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
	Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "fechar aviso")),
	Profile:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "editar perfil")),
	Password: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "trocar senha")),
	Logout:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Confirm:  key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirmar")),
	Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancelar")),
	Done:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "concluir")),
}

// ShortHelp 底部帮助
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Next, k.Previous, k.Delete, k.Edit, k.Export, k.Quit}
}

// FullHelp 完整帮助
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Previous},
		{k.Search, k.Reload, k.Dismiss},
		{k.Edit, k.Delete, k.Export},
		{k.Profile, k.Password, k.Logout, k.Quit},
	}
}
