package bot

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/julenag/bot/internal/utils"
)

// Bot wires the conversation engine to Telegram long polling. It also
// implements the dispatcher's Sender so outbound notifications go through
// the same client.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *Engine
}

func New(token string, engine *Engine) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{api: api, engine: engine}, nil
}

// Run consumes updates until the context is cancelled. Each update is
// handled inline; the engine is cheap and store-bound, so there is no need
// for a worker pool here.
func (b *Bot) Run(ctx context.Context) {
	b.registerCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) registerCommands() {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Qué hace este bot"},
		tgbotapi.BotCommand{Command: "set", Description: "Configurar un nuevo viaje"},
		tgbotapi.BotCommand{Command: "view", Description: "Ver solicitudes pendientes"},
		tgbotapi.BotCommand{Command: "delete", Description: "Eliminar una solicitud"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Cancelar la operación actual"},
	)
	if _, err := b.api.Request(cmds); err != nil {
		utils.LogEvent("", "bot", "set_commands", "error="+err.Error())
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		return
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)

	var reply string
	if update.Message.IsCommand() {
		reply = b.engine.HandleCommand(chatID, update.Message.Command())
	} else {
		reply = b.engine.HandleText(chatID, update.Message.Text)
	}
	if reply == "" {
		return
	}

	if err := b.Send(chatID, reply); err != nil {
		utils.LogEvent("", "bot", "reply", "chat_id="+chatID+" error="+err.Error())
	}
}

// Send pushes plain text to a chat. Used both for conversation replies and
// by the notification dispatcher.
func (b *Bot) Send(chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}
	_, err = b.api.Send(tgbotapi.NewMessage(id, text))
	return err
}
