package services

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"dispatch-service/models"
)

// TelegramNotifier 通过 Telegram Bot API 投递派票消息
//
// 没配置 token 时返回 nil，调用方回退到模拟通道。
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger zerolog.Logger
}

// NewTelegramNotifier 创建 Telegram 通道
func NewTelegramNotifier(token string, logger zerolog.Logger) *TelegramNotifier {
	if token == "" {
		logger.Info().Msg("telegram notifier disabled (no token)")
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create telegram bot")
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		logger.Error().Err(err).Msg("failed to get telegram bot info")
		return nil
	}

	logger.Info().Str("bot", bot.Self.UserName).Msg("telegram notifier initialized")
	return &TelegramNotifier{bot: bot, logger: logger}
}

// Notify 把消息发到店铺配置的 Telegram 聊天
//
// "@xxx" 按频道用户名发送，否则按数字 chat id 解析。
func (n *TelegramNotifier) Notify(shop models.Shop, text string) error {
	var msg tgbotapi.MessageConfig
	if strings.HasPrefix(shop.TelegramChatID, "@") {
		msg = tgbotapi.NewMessageToChannel(shop.TelegramChatID, text)
	} else {
		chatID, err := strconv.ParseInt(shop.TelegramChatID, 10, 64)
		if err != nil {
			return ErrValidation
		}
		msg = tgbotapi.NewMessage(chatID, text)
	}

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error().Err(err).Str("shop", shop.Name).Msg("telegram send failed")
		return err
	}
	return nil
}
