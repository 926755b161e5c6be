package handlers

import (
	"arena-server/internal/domain"
	"encoding/json"
)

// EffectQueuer описывает любую структуру, которая принимает отложенные
// эффекты. Scene движка реализует этот интерфейс.
type EffectQueuer interface {
	QueueEffect(pending domain.PendingEffect)
}

// Context передает хендлеру состояние арены.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Actor      *domain.Entity // Тот, кто выполняет команду
	ActorIndex int            // Индекс актора в сцене (ссылка источника эффекта)
	Effects    EffectQueuer
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет клиенту напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст для клиента (опционально)
	MsgType string // Тип сообщения (INFO, COMBAT, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
