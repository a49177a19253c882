// Package quota lleva la cuenta de peticiones por usuario y día calendario UTC.
package quota

import (
	"context"
	"time"
)

// DefaultDailyLimit es el tope de peticiones por usuario y día.
const DefaultDailyLimit = 5

// Result es el veredicto de una comprobación de cuota.
type Result struct {
	Allowed bool
	Count   int
}

// Store define el contrato del contador diario.
// CheckAndIncrement siempre incrementa: el contador refleja intentos, no aciertos.
type Store interface {
	CheckAndIncrement(ctx context.Context, userID string, now time.Time) (Result, error)
}

func dayOf(now time.Time) string {
	return now.UTC().Format(time.DateOnly)
}
