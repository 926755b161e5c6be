package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	ActorID uuid.UUID       // ID сущности, от имени которой выполняется действие
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
