package service

import (
	"github.com/BerniceZTT/product_console/models"
)

// Window 取出 source 中从 start 开始的一页
// start 越界时拒绝（accepted=false），不做钳制；空集合只接受 start=0
func Window(source []models.Product, start, size int) ([]models.Product, bool) {
	if start < 0 || size <= 0 {
		return nil, false
	}
	if len(source) == 0 {
		if start != 0 {
			return nil, false
		}
		return source[:0:0], true
	}
	if start >= len(source) {
		return nil, false
	}

	end := start + size
	if end > len(source) {
		end = len(source)
	}
	return source[start:end:end], true
}

// Paginator 分页窗口状态
type Paginator struct {
	state   models.WindowState
	visible []models.Product
}

// NewPaginator 创建分页器，size<=0 时使用默认页大小
func NewPaginator(size int) Paginator {
	if size <= 0 {
		size = models.PageSize
	}
	return Paginator{state: models.WindowState{Start: 0, Size: size}}
}

// MoveTo 跳转到 start，被拒绝时状态不变
func (p *Paginator) MoveTo(source []models.Product, start int) bool {
	visible, ok := Window(source, start, p.state.Size)
	if !ok {
		return false
	}
	p.state.Start = start
	p.visible = visible
	return true
}

// Reset 源集合变化后回到第一页
func (p *Paginator) Reset(source []models.Product) {
	p.MoveTo(source, 0)
}

// Next 下一页
func (p *Paginator) Next(source []models.Product) bool {
	return p.MoveTo(source, p.state.Start+p.state.Size)
}

// Previous 上一页
func (p *Paginator) Previous(source []models.Product) bool {
	return p.MoveTo(source, p.state.Start-p.state.Size)
}

// Visible 当前页的产品
func (p Paginator) Visible() []models.Product {
	return p.visible
}

// State 当前窗口
func (p Paginator) State() models.WindowState {
	return p.state
}

// Pagination 分页信息
func (p Paginator) Pagination(total int) models.Pagination {
	return models.NewPagination(p.state, total)
}
