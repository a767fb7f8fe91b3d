package models

// PageSize 每页固定条数
const PageSize = 10

// WindowState 分页窗口
// Start 始终是 Size 的整数倍，且源集合非空时 Start < len(source)
type WindowState struct {
	Start int `json:"start"`
	Size  int `json:"size"`
}

// Pagination 分页信息
type Pagination struct {
	Total   int64 `json:"total"`
	Page    int64 `json:"page"`
	Limit   int64 `json:"limit"`
	Pages   int64 `json:"pages"`
	HasPrev bool  `json:"hasPrev"`
	HasNext bool  `json:"hasNext"`
}

// NewPagination 根据窗口和源集合长度计算分页信息
func NewPagination(w WindowState, total int) Pagination {
	limit := int64(w.Size)
	if limit <= 0 {
		limit = PageSize
	}
	t := int64(total)

	return Pagination{
		Total:   t,
		Page:    int64(w.Start)/limit + 1,
		Limit:   limit,
		Pages:   (t + limit - 1) / limit,
		HasPrev: w.Start-w.Size >= 0,
		HasNext: w.Start+w.Size < total,
	}
}
