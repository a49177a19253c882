package session

import (
	"sync"

	"github.com/masanaritanaka/line-gpt-bot/internal/domain"
)

// MemoryStore guarda los historiales en memoria. El estado se pierde al
// reiniciar el proceso.
type MemoryStore struct {
	mu       sync.Mutex
	maxPairs int
	sessions map[string][]domain.Turn
}

// NewMemoryStore crea un MemoryStore con la ventana indicada en pares.
func NewMemoryStore(maxPairs int) *MemoryStore {
	if maxPairs <= 0 {
		maxPairs = DefaultMaxHistory
	}
	return &MemoryStore{
		maxPairs: maxPairs,
		sessions: make(map[string][]domain.Turn),
	}
}

// History devuelve una copia de los turnos del usuario, nunca el slice interno.
func (s *MemoryStore) History(userID string) []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.sessions[userID]
	if len(turns) == 0 {
		return nil
	}
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}

// AppendExchange añade el par (user, assistant) al final del historial y
// desaloja lo más viejo si la ventana supera 2×maxPairs. El recorte siempre
// quita pares completos para conservar la alternancia user/assistant.
func (s *MemoryStore) AppendExchange(userID, userText, assistantText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[userID],
		domain.Turn{Role: domain.RoleUser, Content: userText},
		domain.Turn{Role: domain.RoleAssistant, Content: assistantText},
	)

	if max := 2 * s.maxPairs; len(turns) > max {
		excess := len(turns) - max
		if excess%2 != 0 {
			excess++
		}
		turns = append([]domain.Turn(nil), turns[excess:]...)
	}
	s.sessions[userID] = turns
}
