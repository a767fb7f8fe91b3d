package ui

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/BerniceZTT/product_console/controllers"
	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/repository"
	"github.com/BerniceZTT/product_console/routes"
	"github.com/BerniceZTT/product_console/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type memoryGateway struct {
	products  []models.Product
	listErr   error
	deleteErr error
}

func (g *memoryGateway) List(ctx context.Context) ([]models.Product, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return append([]models.Product(nil), g.products...), nil
}

func (g *memoryGateway) Delete(ctx context.Context, id int) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for i, p := range g.products {
		if p.ID == id {
			g.products = append(g.products[:i:i], g.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func sampleProducts(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Product{
			ID:            i,
			Name:          fmt.Sprintf("Item %02d", i),
			ExpiryDate:    "2025-03-01",
			PurchasePrice: 2,
			SalePrice:     3,
			Quantity:      i,
		})
	}
	return out
}

// drive 执行命令并把控制器消息送回模型，忽略动画消息
func drive(t *testing.T, m Model, cmd tea.Cmd) (Model, bool) {
	t.Helper()
	quit := false
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		case controllerMsg:
			next, nextCmd := m.Update(msg)
			m = next.(Model)
			queue = append(queue, nextCmd)
		}
	}
	return m, quit
}

func press(t *testing.T, m Model, keys ...string) (Model, bool) {
	t.Helper()
	quit := false
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		var q bool
		m, q = drive(t, next.(Model), cmd)
		quit = quit || q
	}
	return m, quit
}

func newTestModel(t *testing.T, gw *memoryGateway) (Model, *routes.Router) {
	t.Helper()
	ctx := context.Background()
	router := routes.NewRouter(routes.ProductListPath, nil)
	list := controllers.NewProductListController(gw, repository.NewMemoryStore(), router)
	m := NewModel(ctx, list, router, filepath.Join(t.TempDir(), "produtos.xlsx"))
	m, _ = drive(t, m, m.Init())
	return m, router
}

func TestModel_InitLoadsFirstPage(t *testing.T) {
	m, _ := newTestModel(t, &memoryGateway{products: sampleProducts(23)})

	state := m.list.State()
	assert.Len(t, state.Visible, models.PageSize)
	assert.Len(t, m.table.Rows(), models.PageSize)
	assert.Equal(t, "Item 01", m.table.Rows()[0][0])
	assert.Equal(t, "R$ 2,00", m.table.Rows()[0][3])
	assert.Contains(t, m.View(), "Página 1 de 3")
}

func TestModel_PagingKeys(t *testing.T) {
	m, _ := newTestModel(t, &memoryGateway{products: sampleProducts(23)})

	m, _ = press(t, m, "n", "n")
	assert.Equal(t, 20, m.list.State().Window.Start)
	assert.Len(t, m.table.Rows(), 3)

	m, _ = press(t, m, "n")
	assert.Equal(t, 20, m.list.State().Window.Start)

	m, _ = press(t, m, "p")
	assert.Equal(t, 10, m.list.State().Window.Start)
}

func TestModel_SearchFiltersAndResetsWindow(t *testing.T) {
	m, _ := newTestModel(t, &memoryGateway{products: sampleProducts(23)})
	m, _ = press(t, m, "n")

	m, _ = press(t, m, "/", "2", "1", "enter")

	state := m.list.State()
	assert.Equal(t, "21", state.Query)
	assert.Equal(t, 0, state.Window.Start)
	require.Len(t, state.Visible, 1)
	assert.Equal(t, 21, state.Visible[0].ID)
	assert.Equal(t, modeBrowse, m.mode)

	// 搜索结束后按键重新作为命令
	m, _ = press(t, m, "n")
	assert.Equal(t, 0, m.list.State().Window.Start)
}

func TestModel_DeleteWithConfirmation(t *testing.T) {
	gw := &memoryGateway{products: sampleProducts(5)}
	m, _ := newTestModel(t, gw)

	m, _ = press(t, m, "down", "d")
	assert.Equal(t, modeConfirm, m.mode)
	require.NotNil(t, m.list.State().Pending)
	assert.Equal(t, 2, m.list.State().Pending.ID)
	assert.Contains(t, m.View(), "Tem certeza")

	m, _ = press(t, m, "y")

	state := m.list.State()
	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, state.Pending)
	assert.False(t, state.Loading)
	assert.Len(t, state.Collection, 4)
	assert.Len(t, gw.products, 4)
}

func TestModel_DeleteCancelled(t *testing.T) {
	gw := &memoryGateway{products: sampleProducts(5)}
	m, _ := newTestModel(t, gw)

	m, _ = press(t, m, "d", "n")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, m.list.State().Pending)
	assert.Len(t, gw.products, 5)
	assert.Equal(t, 0, m.list.State().Window.Start)
}

func TestModel_UnauthorizedQuits(t *testing.T) {
	gw := &memoryGateway{listErr: utils.CreateServerError(http.StatusUnauthorized, "Token inválido", "")}
	router := routes.NewRouter(routes.ProductListPath, nil)
	list := controllers.NewProductListController(gw, repository.NewMemoryStore(), router)
	m := NewModel(context.Background(), list, router, "")

	var cmd tea.Cmd = m.wrap(list.Mount(context.Background()))
	next, cmd := m.Update(cmd())

	assert.Equal(t, routes.LoginPath, router.Current())
	assert.Equal(t, "Token inválido", next.(Model).ExitMessage())
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_EditNavigates(t *testing.T) {
	m, router := newTestModel(t, &memoryGateway{products: sampleProducts(3)})

	m, quit := press(t, m, "down", "down", "e")

	assert.False(t, quit)
	assert.Equal(t, routes.ProductForm(3), router.Current())
	assert.Contains(t, m.View(), "/product-form/3")
}

func TestModel_Export(t *testing.T) {
	m, _ := newTestModel(t, &memoryGateway{products: sampleProducts(12)})

	m, _ = press(t, m, "x")

	f, err := excelize.OpenFile(m.exportPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Lista de Produtos")
	require.NoError(t, err)
	assert.Len(t, rows, 13)
	assert.Contains(t, m.View(), "Exportado para")
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestModel(t, &memoryGateway{products: sampleProducts(1)})

	_, quit := press(t, m, "q")

	assert.True(t, quit)
}

func TestModel_ConfirmWhileDeleteInFlightKeepsDialog(t *testing.T) {
	gw := &memoryGateway{products: sampleProducts(5)}
	m, _ := newTestModel(t, gw)

	m, _ = press(t, m, "d")
	next, first := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = next.(Model)
	require.NotNil(t, first)
	require.True(t, m.list.State().DeleteInFlight)

	// 第一个删除未完成时确认第二个
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = next.(Model)
	next, second := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = next.(Model)

	assert.Nil(t, second)
	assert.Equal(t, modeConfirm, m.mode)
	require.NotNil(t, m.list.State().Pending)
	assert.Equal(t, 2, m.list.State().Pending.ID)
	assert.Contains(t, m.View(), "Tem certeza")
	assert.Contains(t, m.View(), "Aguarde a exclusão em andamento")

	// 第一个删除完成后可以再次确认
	m, _ = drive(t, m, first)
	require.False(t, m.list.State().DeleteInFlight)
	m, _ = press(t, m, "y")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, m.list.State().Pending)
	assert.Len(t, gw.products, 3)
}
