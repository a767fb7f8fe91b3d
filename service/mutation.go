package service

import (
	"context"

	"github.com/BerniceZTT/product_console/utils"
)

// ProductDeleter 删除远程产品
type ProductDeleter interface {
	Delete(ctx context.Context, id int) error
}

// MutationOutcome 删除结果
// 成功时 Refetch 为 true，由调用方重新加载完整列表，不在本地删除
type MutationOutcome struct {
	ID      int
	Refetch bool
	Err     *utils.ApiError
}

// MutationCoordinator 协调删除操作
// Begin/Settle 由同一个事件循环调用；Delete 可以在其他goroutine执行
type MutationCoordinator struct {
	gateway  ProductDeleter
	inFlight bool
}

// NewMutationCoordinator 创建删除协调器
func NewMutationCoordinator(gateway ProductDeleter) *MutationCoordinator {
	return &MutationCoordinator{gateway: gateway}
}

// Begin 开始一次删除，已有删除在进行中时返回 false
func (m *MutationCoordinator) Begin(id int) bool {
	if m.inFlight {
		utils.Logger.Warn().Int("productId", id).Msg("已有删除操作进行中，忽略本次请求")
		return false
	}
	m.inFlight = true
	return true
}

// Settle 删除结束
func (m *MutationCoordinator) Settle() {
	m.inFlight = false
}

// InFlight 是否有删除在进行中
func (m *MutationCoordinator) InFlight() bool {
	return m.inFlight
}

// Delete 调用远程服务删除产品
func (m *MutationCoordinator) Delete(ctx context.Context, id int) MutationOutcome {
	utils.Logger.Info().Int("productId", id).Msg("开始删除产品")

	if err := m.gateway.Delete(ctx, id); err != nil {
		apiErr := utils.AsApiError(err)
		utils.LogError(apiErr, map[string]interface{}{
			"productId":  id,
			"statusCode": apiErr.StatusCode,
		}, "删除产品失败")
		return MutationOutcome{ID: id, Err: apiErr}
	}

	utils.Logger.Info().Int("productId", id).Msg("删除产品成功，重新加载列表")
	return MutationOutcome{ID: id, Refetch: true}
}
