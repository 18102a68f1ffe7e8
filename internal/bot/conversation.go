package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/youruser/cardbot/internal/card"
)

// input is one user turn: free text, uploaded image bytes, or the data of a
// pressed inline button.
type input struct {
	text   string
	image  []byte
	button string
}

// reply is what the conversation wants sent back for a turn.
type reply struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
	card     []byte // rendered PNG to deliver as a document, when non-nil
	caption  string
	done     bool // the session ended with this turn
}

// conversation advances sessions one update at a time. It is transport-free:
// the bot layer feeds it inputs and sends whatever replies come back, which
// keeps the step logic testable without Telegram.
type conversation struct {
	sessions *sessionStore
	render   func(card.ContactRecord) ([]byte, error)
}

func newConversation() *conversation {
	return &conversation{
		sessions: newSessionStore(),
		render:   card.Render,
	}
}

// begin starts a fresh session for the chat.
func (c *conversation) begin(chatID int64) reply {
	c.sessions.start(chatID)
	return reply{text: "💼 *Business Card Bot*\n\nType /cancel anytime to stop, or /help for guidance.\n\n✏️ Enter your *First Name*:"}
}

// cancel drops the chat's session.
func (c *conversation) cancel(chatID int64) reply {
	c.sessions.clear(chatID)
	return reply{text: "❌ Cancelled. Type /start to try again.", done: true}
}

// clear wipes the chat's answers.
func (c *conversation) clear(chatID int64) reply {
	c.sessions.clear(chatID)
	return reply{text: "🗑 *All data cleared!*\n\nType /start to create a new card from scratch.", done: true}
}

// pendingGenerate reports whether in will trigger card generation, so the
// transport can show progress to the user before the render runs.
func (c *conversation) pendingGenerate(chatID int64, in input) bool {
	s := c.sessions.get(chatID)
	return s != nil && s.Step == stepConfirm && in.button == "gen"
}

// advance runs the transition for the chat's current step.
func (c *conversation) advance(chatID int64, in input) reply {
	s := c.sessions.get(chatID)
	if s == nil {
		return reply{text: "Type /start to create a card."}
	}
	switch s.Step {
	case stepFirst:
		return c.stepFirst(s, in)
	case stepLast:
		return c.stepLast(s, in)
	case stepPhone:
		return c.stepPhone(s, in)
	case stepEmail:
		return c.stepEmail(s, in)
	case stepOrg:
		return c.stepOrg(s, in)
	case stepTitle:
		return c.stepTitle(s, in)
	case stepLogo:
		return c.stepLogo(s, in)
	case stepTheme:
		return c.stepTheme(s, in)
	case stepConfirm:
		return c.stepConfirm(chatID, s, in)
	}
	return reply{text: "Type /start to create a card."}
}

func (c *conversation) stepFirst(s *session, in input) reply {
	if !ValidName(in.text) {
		return reply{text: "❌ Letters only, 2–40 chars.\nRe-enter *First Name*:"}
	}
	s.First = trimmed(in.text)
	s.Step = stepLast
	return reply{text: "✏️ Enter your *Last Name*:"}
}

func (c *conversation) stepLast(s *session, in input) reply {
	if !ValidName(in.text) {
		return reply{text: "❌ Letters only, 2–40 chars.\nRe-enter *Last Name*:"}
	}
	s.Last = trimmed(in.text)
	s.Step = stepPhone
	return reply{text: "📱 Enter *Phone* (10 digits or +91 format):"}
}

func (c *conversation) stepPhone(s *session, in input) reply {
	if !ValidPhone(in.text) {
		return reply{text: "❌ Invalid.\nExample: `9876543210` or `+919876543210`\nRe-enter:"}
	}
	s.Phone = FormatPhone(in.text)
	s.Step = stepEmail
	return reply{text: "📧 Enter your *Email*:"}
}

func (c *conversation) stepEmail(s *session, in input) reply {
	if !ValidEmail(in.text) {
		return reply{text: "❌ Invalid email.\nExample: `you@example.com`\nRe-enter:"}
	}
	s.Email = trimmed(in.text)
	s.Step = stepOrg
	return reply{text: "🏢 Enter *Organization* (or `skip`):"}
}

func (c *conversation) stepOrg(s *session, in input) reply {
	s.Org = skippable(in.text)
	s.Step = stepTitle
	return reply{text: "🎯 Enter *Job Title* (or `skip`):"}
}

func (c *conversation) stepTitle(s *session, in input) reply {
	s.Title = skippable(in.text)
	s.Step = stepLogo
	return reply{text: "🖼 Upload your *Logo* (send a photo) or type `skip`:\n\n_Your logo will appear on the card and in the center of the QR code._"}
}

func (c *conversation) stepLogo(s *session, in input) reply {
	switch {
	case in.image != nil:
		s.Logo = in.image
	case isSkip(in.text):
		s.Logo = nil
	default:
		return reply{text: "❌ Please *send a photo* or type `skip`:"}
	}
	s.Step = stepTheme
	kb := themeKeyboard()
	return reply{text: "🎨 Choose a *Theme*:", keyboard: &kb}
}

func (c *conversation) stepTheme(s *session, in input) reply {
	const prefix = "theme_"
	if len(in.button) <= len(prefix) || in.button[:len(prefix)] != prefix {
		return reply{text: "🎨 Pick a theme from the buttons above."}
	}
	s.ThemeID = in.button[len(prefix):]
	s.Step = stepConfirm
	kb := confirmKeyboard()
	return reply{text: summary(s), keyboard: &kb}
}

func (c *conversation) stepConfirm(chatID int64, s *session, in input) reply {
	switch in.button {
	case "restart":
		c.sessions.clear(chatID)
		return reply{text: "🔄 Restarted. Type /start to begin again.", done: true}
	case "gen":
		png, err := c.render(c.record(s))
		c.sessions.clear(chatID)
		if err != nil {
			return reply{
				text: fmt.Sprintf("❌ Something went wrong while generating the card.\nError: `%v`\n\nType /start to try again.", err),
				done: true,
			}
		}
		return reply{
			card:    png,
			caption: "🎉 *Your Business Card is ready!*\n\n📲 Scan the QR code to save the contact.\nType /start to make another card.",
			done:    true,
		}
	}
	return reply{text: "Use the buttons above to generate or restart."}
}

func (c *conversation) record(s *session) card.ContactRecord {
	return card.ContactRecord{
		First:   s.First,
		Last:    s.Last,
		Phone:   s.Phone,
		Email:   s.Email,
		Org:     s.Org,
		Title:   s.Title,
		ThemeID: s.ThemeID,
		Logo:    s.Logo,
	}
}

func summary(s *session) string {
	logoStatus := "➖ None"
	if len(s.Logo) > 0 {
		logoStatus = "✅ Uploaded"
	}
	return fmt.Sprintf(
		"📋 *Confirm Details*\n\n👤 %s %s\n🎯 %s\n🏢 %s\n📱 %s\n📧 %s\n🖼 Logo: %s\n🎨 %s",
		s.First, s.Last, orDash(s.Title), orDash(s.Org), s.Phone, s.Email,
		logoStatus, card.ResolveTheme(s.ThemeID).Label,
	)
}

// themeKeyboard lays the catalog out two buttons per row.
func themeKeyboard() tgbotapi.InlineKeyboardMarkup {
	themes := card.Themes()
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(themes); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(themes[i].Label, "theme_"+themes[i].ID),
		}
		if i+1 < len(themes) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(themes[i+1].Label, "theme_"+themes[i+1].ID))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Generate!", "gen"),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Restart", "restart"),
		),
	)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
