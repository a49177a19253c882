package bot

import "github.com/masanaritanaka/line-gpt-bot/internal/domain"

// Reply tokens centinela que LINE usa en los webhooks de verificación de la
// consola. No corresponden a conversaciones reales y no admiten respuesta.
const (
	sentinelZeroToken = "00000000000000000000000000000000"
	sentinelFillToken = "ffffffffffffffffffffffffffffffff"
)

// ShouldProcess decide si un evento pasa al pipeline completo. Los eventos
// descartados no mutan cuota ni historial y no generan respuesta.
func ShouldProcess(ev domain.Event) bool {
	if ev.ReplyToken == sentinelZeroToken || ev.ReplyToken == sentinelFillToken {
		return false
	}
	if ev.DeliveryContext.IsRedelivery {
		return false
	}
	if ev.Type != domain.EventTypeMessage || ev.Message.Type != domain.MessageTypeText {
		return false
	}
	return true
}
