package controllers

import (
	"context"
	"io"
	"slices"

	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/repository"
	"github.com/BerniceZTT/product_console/routes"
	"github.com/BerniceZTT/product_console/service"
	"github.com/BerniceZTT/product_console/utils"
)

// Msg 异步操作的结果
type Msg interface{}

// Cmd 阻塞操作，结果通过 Update 送回控制器
type Cmd func(ctx context.Context) Msg

// productsLoadedMsg 列表加载完成
type productsLoadedMsg struct {
	seq      int
	products []models.Product
	err      error
}

// productDeletedMsg 删除完成
type productDeletedMsg struct {
	outcome service.MutationOutcome
}

// ViewState 列表页面的渲染数据
type ViewState struct {
	Visible        []models.Product
	Collection     []models.Product
	FilteredCount  int
	Query          string
	Loading        bool
	Notification   models.Notification
	Window         models.WindowState
	Pagination     models.Pagination
	Pending        *models.Product
	Phase          models.Phase
	DeleteInFlight bool
}

// ProductListController 产品列表页面状态
// 所有方法和 Update 必须在同一个goroutine中调用
type ProductListController struct {
	gateway   repository.ProductGateway
	sessions  repository.SessionStore
	navigator routes.Navigator
	mutations *service.MutationCoordinator

	collection   []models.Product
	filtered     []models.Product
	query        string
	pager        service.Paginator
	pending      *models.Product
	inFlight     int
	fetchSeq     int
	notification models.Notification
	phase        models.Phase
}

// NewProductListController 创建产品列表控制器
func NewProductListController(gateway repository.ProductGateway, sessions repository.SessionStore, navigator routes.Navigator) *ProductListController {
	return &ProductListController{
		gateway:   gateway,
		sessions:  sessions,
		navigator: navigator,
		mutations: service.NewMutationCoordinator(gateway),
		pager:     service.NewPaginator(models.PageSize),
		phase:     models.PhaseIdle,
	}
}

// Mount 进入页面：显示一次性提示并加载列表
func (c *ProductListController) Mount(ctx context.Context) Cmd {
	if c.sessions != nil {
		message, ok, err := c.sessions.Take(ctx, models.ProductOperationKey)
		if err != nil {
			utils.LogError(err, map[string]interface{}{
				"key": models.ProductOperationKey,
			}, "读取操作提示失败")
		} else if ok && message != "" {
			c.notify(models.SeveritySuccess, message)
		}
	}
	return c.fetch()
}

// Reload 重新加载列表
func (c *ProductListController) Reload() Cmd {
	return c.fetch()
}

func (c *ProductListController) fetch() Cmd {
	c.inFlight++
	c.fetchSeq++
	c.phase = models.PhaseLoading
	seq := c.fetchSeq
	gateway := c.gateway

	utils.Logger.Debug().Int("seq", seq).Msg("加载产品列表")

	return func(ctx context.Context) Msg {
		products, err := gateway.List(ctx)
		return productsLoadedMsg{seq: seq, products: products, err: err}
	}
}

// SetQuery 修改搜索条件，回到第一页
func (c *ProductListController) SetQuery(query string) {
	c.query = query
	c.refilter()
}

func (c *ProductListController) refilter() {
	c.filtered = service.FilterProducts(c.collection, c.query)
	c.pager.Reset(c.filtered)
}

// NextPage 下一页，已是最后一页时不变
func (c *ProductListController) NextPage() {
	c.pager.Next(c.filtered)
}

// PreviousPage 上一页，已是第一页时不变
func (c *ProductListController) PreviousPage() {
	c.pager.Previous(c.filtered)
}

// RequestDelete 选择待删除的产品
func (c *ProductListController) RequestDelete(product models.Product) {
	p := product
	c.pending = &p
}

// CancelDelete 取消删除
func (c *ProductListController) CancelDelete() {
	c.pending = nil
}

// ConfirmDelete 删除待删除的产品
// 没有待删除产品或已有删除进行中时返回 nil
func (c *ProductListController) ConfirmDelete() Cmd {
	if c.pending == nil {
		return nil
	}
	id := c.pending.ID
	if !c.mutations.Begin(id) {
		return nil
	}
	c.pending = nil
	c.inFlight++

	mutations := c.mutations
	return func(ctx context.Context) Msg {
		return productDeletedMsg{outcome: mutations.Delete(ctx, id)}
	}
}

// Update 处理异步结果，返回后续命令
func (c *ProductListController) Update(msg Msg) Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		return c.onProductsLoaded(msg)
	case productDeletedMsg:
		return c.onProductDeleted(msg)
	}
	return nil
}

func (c *ProductListController) onProductsLoaded(msg productsLoadedMsg) Cmd {
	c.inFlight--
	latest := msg.seq == c.fetchSeq

	if msg.err != nil {
		if latest {
			c.phase = models.PhaseError
		}
		c.fail(msg.err, "加载产品列表失败")
		return nil
	}

	if !latest {
		utils.Logger.Debug().Int("seq", msg.seq).Int("latest", c.fetchSeq).Msg("忽略过期的列表结果")
		return nil
	}

	c.collection = msg.products
	c.refilter()
	c.phase = models.PhaseReady

	utils.LogInfo(map[string]interface{}{
		"total":    len(c.collection),
		"filtered": len(c.filtered),
		"query":    c.query,
	}, "产品列表加载完成")
	return nil
}

func (c *ProductListController) onProductDeleted(msg productDeletedMsg) Cmd {
	c.mutations.Settle()
	c.inFlight--

	if msg.outcome.Err != nil {
		c.fail(msg.outcome.Err, "删除产品失败")
		return nil
	}
	if msg.outcome.Refetch {
		return c.fetch()
	}
	return nil
}

// fail 显示错误提示，授权失败时跳转登录页
func (c *ProductListController) fail(err error, message string) {
	apiErr := utils.AsApiError(err)
	utils.LogError(apiErr, map[string]interface{}{
		"statusCode": apiErr.StatusCode,
		"errorCode":  apiErr.ErrorCode,
	}, message)

	c.notify(models.SeverityError, utils.ErrorDetail(err))
	if apiErr.IsUnauthorized() {
		c.navigate(routes.LoginPath)
	}
}

func (c *ProductListController) notify(severity models.Severity, message string) {
	c.notification = models.Notification{Visible: true, Message: message, Severity: severity}
}

func (c *ProductListController) navigate(path string) {
	if c.navigator != nil {
		c.navigator.Navigate(path)
	}
}

// Run 同步执行命令链，直到没有后续命令
func (c *ProductListController) Run(ctx context.Context, cmd Cmd) {
	for cmd != nil {
		cmd = c.Update(cmd(ctx))
	}
}

// EditProduct 打开产品编辑页
func (c *ProductListController) EditProduct(id int) {
	c.navigate(routes.ProductForm(id))
}

// Logout 清除会话令牌并跳转登录页
func (c *ProductListController) Logout(ctx context.Context) {
	if c.sessions != nil {
		if err := c.sessions.Remove(ctx, models.SessionTokenKey); err != nil {
			utils.LogError(err, nil, "清除会话令牌失败")
		}
	}
	c.navigate(routes.LoginPath)
}

// OpenProfile 打开个人资料页
func (c *ProductListController) OpenProfile() {
	c.navigate(routes.ProfileFormPath)
}

// ChangePassword 打开修改密码页
func (c *ProductListController) ChangePassword() {
	c.navigate(routes.ChangePasswordPath)
}

// DismissNotification 关闭提示
func (c *ProductListController) DismissNotification() {
	c.notification.Visible = false
}

// ExportAll 导出全部产品，不受搜索和分页影响
func (c *ProductListController) ExportAll(w io.Writer) error {
	if err := service.ExportProducts(w, c.collection); err != nil {
		c.notify(models.SeverityError, err.Error())
		return err
	}
	return nil
}

// State 当前渲染数据，返回的切片是副本
func (c *ProductListController) State() ViewState {
	state := ViewState{
		Visible:        slices.Clone(c.pager.Visible()),
		Collection:     slices.Clone(c.collection),
		FilteredCount:  len(c.filtered),
		Query:          c.query,
		Loading:        c.inFlight > 0,
		Notification:   c.notification,
		Window:         c.pager.State(),
		Pagination:     c.pager.Pagination(len(c.filtered)),
		Phase:          c.phase,
		DeleteInFlight: c.mutations.InFlight(),
	}
	if c.pending != nil {
		p := *c.pending
		state.Pending = &p
	}
	return state
}
