package domain

// Role etiqueta quién habló en un turno de la conversación.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn es un mensaje individual del historial de conversación.
// Inmutable una vez creado.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
