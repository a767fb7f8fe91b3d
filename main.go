package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/BerniceZTT/product_console/config"
	"github.com/BerniceZTT/product_console/controllers"
	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/repository"
	"github.com/BerniceZTT/product_console/routes"
	"github.com/BerniceZTT/product_console/utils"

	"github.com/spf13/cobra"
)

// app 命令共享的依赖
type app struct {
	cfg      *config.Config
	sessions repository.SessionStore
	gateway  repository.ProductGateway
	router   *routes.Router
	list     *controllers.ProductListController
	closers  []func(ctx context.Context)
	logFile  *os.File
}

var current *app

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "product-console",
	Short:         "Lista de produtos",
	Long:          `Consulta, pesquisa, exclusão e exportação dos produtos cadastrados no serviço remoto.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context(), cmd.Name() == browseCmd.Name())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

// run 执行命令，无论成功与否都释放连接和日志文件
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	defer func() {
		if current != nil {
			current.close(context.Background())
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// setup 加载配置并初始化会话存储和远程服务
func setup(ctx context.Context, interactive bool) (*app, error) {
	// 加载配置
	cfg := config.LoadConfig()
	a := &app{cfg: cfg}

	// 初始化日志，交互界面下日志只写文件
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, utils.NewAppError("failed to open log file", 0, err)
		}
		a.logFile = f
		out = f
	} else if interactive {
		out = io.Discard
	}
	utils.InitLogger(cfg.Debug, out)

	sessions, err := openSessionStore(ctx, cfg, a)
	if err != nil {
		a.close(ctx)
		return nil, err
	}
	a.sessions = sessions

	if cfg.APIToken != "" {
		if err := sessions.Set(ctx, models.SessionTokenKey, cfg.APIToken); err != nil {
			utils.LogError(err, nil, "写入会话令牌失败")
		}
	}

	a.gateway = repository.NewProductAPI(cfg.APIBaseURL, cfg.RequestTimeout, repository.SessionTokenSource(sessions))
	a.router = routes.NewRouter(routes.ProductListPath, nil)
	a.list = controllers.NewProductListController(a.gateway, sessions, a.router)

	utils.LogInfo(map[string]interface{}{
		"apiUrl":  cfg.APIBaseURL,
		"session": cfg.SessionBackend,
	}, "初始化完成")
	return a, nil
}

// openSessionStore 根据配置选择会话存储
func openSessionStore(ctx context.Context, cfg *config.Config, a *app) (repository.SessionStore, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client, err := repository.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) {
			if err := client.Close(); err != nil {
				utils.Logger.Error().Err(err).Msg("关闭Redis连接失败")
			}
		})
		return repository.NewRedisStore(client, cfg.SessionKeyPrefix), nil

	case config.SessionBackendMongo:
		db, err := repository.InitMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repository.CloseMongoDB)
		return repository.NewMongoStore(db), nil

	case config.SessionBackendMemory, "":
		return repository.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
}

func (a *app) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i](ctx)
	}
	a.closers = nil
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// load 加载产品列表，失败时返回页面上显示的错误
func (a *app) load(ctx context.Context) (controllers.ViewState, error) {
	a.list.Run(ctx, a.list.Mount(ctx))
	state := a.list.State()
	if state.Phase == models.PhaseError {
		return state, a.failure(state)
	}
	return state, nil
}

func (a *app) failure(state controllers.ViewState) error {
	if a.router.Current() == routes.LoginPath {
		return fmt.Errorf("%s (faça login novamente: product-console login --token <token>)", state.Notification.Message)
	}
	return fmt.Errorf("%s", state.Notification.Message)
}
