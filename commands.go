package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BerniceZTT/product_console/controllers"
	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/ui"
	"github.com/BerniceZTT/product_console/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	listQuery  string
	listPage   int
	listJSON   bool
	exportTo   string
	loginToken string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Abre a lista de produtos no terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := ui.NewModel(cmd.Context(), current.list, current.router, exportTo)
		final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		if err != nil {
			return err
		}
		if msg := final.(ui.Model).ExitMessage(); msg != "" {
			fmt.Println(msg)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista os produtos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := current.load(cmd.Context()); err != nil {
			return err
		}

		current.list.SetQuery(listQuery)
		for i := 1; i < listPage; i++ {
			current.list.NextPage()
		}
		state := current.list.State()
		if listPage > 1 && int64(listPage) != state.Pagination.Page {
			return fmt.Errorf("página %d não existe (total %d)", listPage, state.Pagination.Pages)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Products   []models.Product  `json:"products"`
				Pagination models.Pagination `json:"pagination"`
				Query      string            `json:"query,omitempty"`
			}{state.Visible, state.Pagination, state.Query})
		}

		fmt.Println(renderTable(state))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deleta um produto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido %q", args[0])
		}

		state, err := current.load(cmd.Context())
		if err != nil {
			return err
		}
		var target *models.Product
		for i := range state.Collection {
			if state.Collection[i].ID == id {
				target = &state.Collection[i]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("produto %d não encontrado", id)
		}

		current.list.RequestDelete(*target)
		current.list.Run(cmd.Context(), current.list.ConfirmDelete())

		state = current.list.State()
		if state.Notification.Visible && state.Notification.Severity == models.SeverityError {
			return current.failure(state)
		}
		fmt.Printf("Produto %d (%s) deletado. %d produtos restantes.\n", id, target.Name, len(state.Collection))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <arquivo.xlsx>",
	Short: "Exporta todos os produtos para Excel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := current.load(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return utils.NewAppError("failed to create export file", 0, err)
		}
		if err := current.list.ExportAll(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("%d produtos exportados para %s\n", len(state.Collection), args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Salva o token de sessão",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := utils.InspectToken(loginToken, time.Now())
		if err != nil {
			return err
		}
		if err := current.sessions.Set(cmd.Context(), models.SessionTokenKey, loginToken); err != nil {
			return utils.NewAppError("failed to store session token", 0, err)
		}
		if user != nil && user.Username != "" {
			fmt.Printf("Sessão salva para %s.\n", user.Username)
			return nil
		}
		fmt.Println("Sessão salva.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove o token de sessão",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current.list.Logout(cmd.Context())
		fmt.Println("Sessão encerrada.")
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "texto de pesquisa")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "página (10 produtos por página)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "saída em JSON")

	browseCmd.Flags().StringVar(&exportTo, "export-file", "produtos.xlsx", "arquivo usado pela tecla de exportação")

	loginCmd.Flags().StringVar(&loginToken, "token", "", "token de sessão")
	_ = loginCmd.MarkFlagRequired("token")
}

// renderTable 当前页的文本表格
func renderTable(state controllers.ViewState) string {
	rows := make([][]string, 0, len(state.Visible))
	for _, p := range state.Visible {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.ExpiryDate,
			strconv.Itoa(p.Quantity),
			utils.FormatPrice(p.PurchasePrice),
			utils.FormatPrice(p.SalePrice),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Id", "Nome", "Validade", "Quantidade", "Valor Compra", "Valor Venda").
		Rows(rows...)

	pages := state.Pagination.Pages
	if pages == 0 {
		pages = 1
	}
	footer := fmt.Sprintf("Página %d de %d · %d produtos", state.Pagination.Page, pages, state.FilteredCount)
	return t.String() + "\n" + footer
}
