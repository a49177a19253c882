package bot

import (
	"testing"

	"github.com/masanaritanaka/line-gpt-bot/internal/domain"
)

func textEvent() domain.Event {
	return domain.Event{
		Type:       domain.EventTypeMessage,
		Message:    domain.Message{Type: domain.MessageTypeText, Text: "hola"},
		ReplyToken: "abcdef1234567890abcdef1234567890",
		Source:     domain.Source{UserID: "U1"},
	}
}

func TestShouldProcess(t *testing.T) {
	t.Run("text message passes", func(t *testing.T) {
		if !ShouldProcess(textEvent()) {
			t.Fatalf("expected plain text message to pass")
		}
	})

	t.Run("zero sentinel token rejected", func(t *testing.T) {
		ev := textEvent()
		ev.ReplyToken = "00000000000000000000000000000000"
		if ShouldProcess(ev) {
			t.Fatalf("expected zero sentinel token to be rejected")
		}
	})

	t.Run("ffff sentinel token rejected", func(t *testing.T) {
		ev := textEvent()
		ev.ReplyToken = "ffffffffffffffffffffffffffffffff"
		if ShouldProcess(ev) {
			t.Fatalf("expected ffff sentinel token to be rejected")
		}
	})

	t.Run("redelivery rejected", func(t *testing.T) {
		ev := textEvent()
		ev.DeliveryContext.IsRedelivery = true
		if ShouldProcess(ev) {
			t.Fatalf("expected redelivered event to be rejected")
		}
	})

	t.Run("non message event rejected", func(t *testing.T) {
		ev := textEvent()
		ev.Type = "follow"
		if ShouldProcess(ev) {
			t.Fatalf("expected follow event to be rejected")
		}
	})

	t.Run("non text message rejected", func(t *testing.T) {
		ev := textEvent()
		ev.Message.Type = "sticker"
		if ShouldProcess(ev) {
			t.Fatalf("expected sticker message to be rejected")
		}
	})
}
