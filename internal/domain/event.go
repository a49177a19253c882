package domain

// Tipos de evento y de mensaje que procesa el bot.
const (
	EventTypeMessage = "message"
	MessageTypeText  = "text"
)

// WebhookRequest es el cuerpo del webhook de LINE: un lote de eventos.
type WebhookRequest struct {
	Destination string  `json:"destination,omitempty"`
	Events      []Event `json:"events"`
}

// Event representa una notificación individual dentro del lote.
type Event struct {
	Type            string          `json:"type"`
	Message         Message         `json:"message"`
	ReplyToken      string          `json:"replyToken"`
	Source          Source          `json:"source"`
	DeliveryContext DeliveryContext `json:"deliveryContext"`
}

// Message es el contenido del evento cuando se trata de un mensaje.
type Message struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

// Source identifica al remitente del evento.
type Source struct {
	Type   string `json:"type,omitempty"`
	UserID string `json:"userId"`
}

// DeliveryContext marca si LINE está reenviando un evento ya entregado.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}
