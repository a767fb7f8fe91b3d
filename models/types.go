package models

// Severity 通知级别
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification 通知状态
type Notification struct {
	Visible  bool     `json:"show"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}

// Phase 列表加载阶段
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// 会话存储中使用的键
const (
	SessionTokenKey     = "token"
	ProductOperationKey = "product-operation" // 跨页面的一次性成功提示
)
