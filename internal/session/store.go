// Package session mantiene el historial de conversación reciente por usuario.
package session

import "github.com/masanaritanaka/line-gpt-bot/internal/domain"

// DefaultMaxHistory es la cantidad de pares usuario/asistente que se conservan.
const DefaultMaxHistory = 5

// Store define el contrato del historial por usuario.
type Store interface {
	// History devuelve los turnos del usuario en orden cronológico.
	// Vacío si el usuario nunca escribió.
	History(userID string) []domain.Turn
	// AppendExchange añade el turno del usuario y acto seguido el del
	// asistente, recortando lo más viejo si la ventana se pasa del tope.
	AppendExchange(userID, userText, assistantText string)
}
