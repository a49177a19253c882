package quota

import (
	"context"
	"sync"
	"time"
)

// dayKey identifica el contador de un usuario en un día UTC concreto.
// Clave compuesta en lugar de concatenar strings: evita colisiones con
// identificadores que contengan fechas.
type dayKey struct {
	userID string
	day    string
}

// MemoryStore cuenta peticiones en un mapa en memoria. El estado se pierde
// al reiniciar el proceso.
type MemoryStore struct {
	mu     sync.Mutex
	limit  int
	counts map[dayKey]int
	curDay string
}

// NewMemoryStore crea un MemoryStore con el límite diario indicado.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &MemoryStore{
		limit:  limit,
		counts: make(map[dayKey]int),
	}
}

// CheckAndIncrement incrementa el contador de (userID, día de now) y devuelve
// si la petición entra dentro del límite. Crea el contador en 1 si no existía.
func (s *MemoryStore) CheckAndIncrement(_ context.Context, userID string, now time.Time) (Result, error) {
	day := dayOf(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Al cruzar de día se barren los contadores viejos: nunca vuelven a
	// leerse y mantener el mapa acotado evita crecer sin límite.
	if day != s.curDay {
		for k := range s.counts {
			if k.day != day {
				delete(s.counts, k)
			}
		}
		s.curDay = day
	}

	key := dayKey{userID: userID, day: day}
	s.counts[key]++
	count := s.counts[key]

	return Result{Allowed: count <= s.limit, Count: count}, nil
}

// Len devuelve cuántos contadores viven en el mapa. Solo para tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counts)
}
