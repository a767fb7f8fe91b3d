package routes

import (
	"sync"

	"github.com/BerniceZTT/product_console/utils"
)

// 页面路径
const (
	LoginPath          = "/login"
	ProfileFormPath    = "/profile-form"
	ChangePasswordPath = "/change-password"
)

// Navigator 页面跳转
type Navigator interface {
	Navigate(path string)
}

// Router 记录跳转请求，由展示层决定如何响应
type Router struct {
	mu       sync.Mutex
	current  string
	history  []string
	onChange func(path string)
}

// NewRouter 创建路由器，onChange 可以为 nil
func NewRouter(start string, onChange func(path string)) *Router {
	return &Router{current: start, onChange: onChange}
}

// Navigate 跳转到 path
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.history = append(r.history, path)
	r.current = path
	onChange := r.onChange
	r.mu.Unlock()

	utils.Logger.Info().Str("path", path).Msg("页面跳转")

	if onChange != nil {
		onChange(path)
	}
}

// Current 当前页面
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History 跳转记录
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
