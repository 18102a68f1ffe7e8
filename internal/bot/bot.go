package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/youruser/cardbot/internal/util"
)

const helpText = "💼 *Business Card Bot — Help*\n\n" +
	"This bot generates a professional digital business card with a QR code " +
	"that anyone can scan to save your contact.\n\n" +
	"*Commands:*\n" +
	"• /start — Create a new business card\n" +
	"• /clear — Clear current progress & start fresh\n" +
	"• /cancel — Cancel the current session\n" +
	"• /help — Show this help message\n\n" +
	"*Steps during card creation:*\n" +
	"1️⃣ First Name\n2️⃣ Last Name\n3️⃣ Phone number _(Indian format: 10 digits or +91...)_\n" +
	"4️⃣ Email address\n5️⃣ Organization _(or type `skip`)_\n6️⃣ Job Title _(or type `skip`)_\n" +
	"7️⃣ Logo image _(send a photo, or type `skip`)_\n8️⃣ Choose a colour theme\n9️⃣ Confirm & generate!\n\n" +
	"*Tips:*\n" +
	"• Your logo appears both on the card and embedded in the QR code center.\n" +
	"• The QR encodes a vCard — scan it with any phone camera to save contact details.\n" +
	"• Type /clear anytime to wipe your answers and start over."

// Bot runs the Telegram conversation that collects a contact record and
// delivers the rendered card.
type Bot struct {
	api  *tgbotapi.BotAPI
	conv *conversation
}

func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, conv: newConversation()}, nil
}

// Run polls for updates until the update channel closes.
func (b *Bot) Run() error {
	log.Printf("bot authorized as @%s", b.api.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for update := range b.api.GetUpdatesChan(u) {
		b.handleUpdate(update)
	}
	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.send(chatID, b.conv.begin(chatID))
		case "cancel":
			b.send(chatID, b.conv.cancel(chatID))
		case "clear":
			b.send(chatID, b.conv.clear(chatID))
		case "help":
			b.send(chatID, reply{text: helpText})
		default:
			b.send(chatID, reply{text: "❓ Unknown command.\n\nUse /start to create a card or /help for guidance."})
		}
		return
	}
	in := input{text: msg.Text}
	if raw, ok := b.fetchImage(msg); ok {
		in.image = raw
	}
	b.send(chatID, b.conv.advance(chatID, in))
}

// fetchImage downloads the image attached to msg, from either a photo
// (highest resolution) or an image document.
func (b *Bot) fetchImage(msg *tgbotapi.Message) ([]byte, bool) {
	var fileID string
	switch {
	case len(msg.Photo) > 0:
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		fileID = msg.Document.FileID
	default:
		return nil, false
	}
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		log.Println("resolve file URL:", err)
		return nil, false
	}
	raw, err := util.GetBytes(url)
	if err != nil {
		log.Println("download logo:", err)
		return nil, false
	}
	return raw, true
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Println("answer callback:", err)
	}
	chatID := cq.Message.Chat.ID
	in := input{button: cq.Data}
	if b.conv.pendingGenerate(chatID, in) {
		// Rendering takes a moment; replace the confirm prompt first so
		// the user sees progress while the card is drawn.
		edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, "⏳ Generating your card, please wait...")
		if _, err := b.api.Send(edit); err != nil {
			log.Println("edit message:", err)
		}
	}
	r := b.conv.advance(chatID, in)
	if r.card != nil {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: "card.png", Bytes: r.card})
		doc.Caption = r.caption
		doc.ParseMode = tgbotapi.ModeMarkdown
		if _, err := b.api.Send(doc); err != nil {
			log.Println("send card:", err)
		}
		return
	}
	edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, r.text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if r.keyboard != nil {
		edit.ReplyMarkup = r.keyboard
	}
	if _, err := b.api.Send(edit); err != nil {
		log.Println("edit message:", err)
	}
}

func (b *Bot) send(chatID int64, r reply) {
	if r.text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, r.text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if r.keyboard != nil {
		msg.ReplyMarkup = *r.keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Println("send message:", err)
	}
}
