package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"ytfetchbot/internal/bot"
	"ytfetchbot/internal/catalog"
	"ytfetchbot/internal/lang"
	"ytfetchbot/internal/membership"
	"ytfetchbot/internal/pipeline"
	"ytfetchbot/internal/selection"
)

const (
	checkMembershipCallback = "check_membership"
	formatCallbackPrefix    = "format_"
)

// Controller reacts to inbound Telegram updates: it gates every action on
// channel membership, turns links into format pickers and picked formats
// into fetches.
type Controller struct {
	bot      bot.Service
	gate     *membership.Gate
	catalog  *catalog.Catalog
	store    *selection.Store
	pipeline *pipeline.Pipeline
	joinLink string
}

func NewController(
	botService bot.Service,
	gate *membership.Gate,
	formatCatalog *catalog.Catalog,
	store *selection.Store,
	fetchPipeline *pipeline.Pipeline,
	joinLink string,
) *Controller {
	return &Controller{
		bot:      botService,
		gate:     gate,
		catalog:  formatCatalog,
		store:    store,
		pipeline: fetchPipeline,
		joinLink: joinLink,
	}
}

// HandleUpdate processes one inbound update. Callers may invoke it
// concurrently for different updates; all shared state lives in the
// selection store, which is safe for concurrent use.
func (c *Controller) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	if update.CallbackQuery != nil {
		c.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		return
	}
	c.handleMessage(ctx, update.Message)
}

func (c *Controller) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !c.gate.IsMember(message.From.ID) {
		c.sendJoinPrompt(chatID)
		return
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			c.sendMessage(chatID, lang.GetMessage(lang.WelcomeMsgID), nil)
		default:
			c.sendMessage(chatID, lang.GetMessage(lang.InvalidLinkMsgID), nil)
		}
		return
	}

	c.handleLink(ctx, chatID, strings.TrimSpace(message.Text))
}

func (c *Controller) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.From == nil {
		return
	}

	data := query.Data
	switch {
	case data == checkMembershipCallback:
		c.handleMembershipCheck(query)
	case strings.HasPrefix(data, formatCallbackPrefix):
		c.handleFormatPick(ctx, query)
	default:
		logrus.Warnf("Unknown callback data: %s", data)
		c.bot.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, ""))
	}
}

func (c *Controller) sendMessage(chatID int64, text string, keyboard any) {
	if _, err := c.bot.SendMessage(chatID, text, keyboard); err != nil {
		logrus.WithError(err).Errorf("Failed to send message to chat %d", chatID)
	}
}
