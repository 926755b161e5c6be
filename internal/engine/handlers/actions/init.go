package actions

import "arena-server/internal/engine/handlers"

// HandleInit не меняет состояние: движок сам отдаёт полный снимок арены
// на ближайшем тике. Команда существует, чтобы клиент мог форсировать
// приветствие после переподключения.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать на арену.",
		MsgType: "INFO",
	}, nil
}
