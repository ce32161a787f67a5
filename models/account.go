package models

// Role 账号角色，决定导航范围和管理操作是否可见
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// AccountStatus 账号状态（仅用户管理页面使用，登录时不校验）
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Account 系统用户
type Account struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"` // 唯一，作为登录键
	Role      Role          `json:"role"`
	Status    AccountStatus `json:"status"`
	LastLogin string        `json:"lastLogin"` // ISO-8601，新建用户为 "Never"
	CreatedAt string        `json:"createdAt"`
}
