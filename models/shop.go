package models

// Shop 投注店铺，配置消息通道和默认注额
type Shop struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TelegramChatID string  `json:"telegramChatId"`
	WhatsAppNumber string  `json:"whatsappNumber"`
	DefaultStake   float64 `json:"defaultStake"`
	IsActive       bool    `json:"isActive"`
}

// TemplateType 消息模板类型
type TemplateType string

const (
	TemplateTelegram TemplateType = "telegram"
	TemplateWhatsApp TemplateType = "whatsapp"
)

// MessageTemplate 派票消息模板
//
// Content 中可用的占位符: {match} {odds} {stake} {potential_win} {ticket_id}
type MessageTemplate struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Content string       `json:"content"`
	Type    TemplateType `json:"type"`
}
