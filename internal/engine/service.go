package engine

import (
	"time"

	"arena-server/internal/domain"
	"arena-server/internal/engine/handlers"
	"arena-server/internal/engine/handlers/actions"
	"arena-server/internal/network"
	"arena-server/pkg/api"
	"arena-server/pkg/arena"
	"arena-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// joinRequest - заявка на подключение игрока. Обрабатывается игровым
// циклом, чтобы вся мутация сцены происходила в одной горутине.
type joinRequest struct {
	name  string
	reply chan *domain.Entity
}

type GameService struct {
	Scene *Scene

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	cfg      Config
	tick     uint64
	joinCh   chan joinRequest
	quitCh   chan struct{}
	handlers map[domain.ActionType]handlers.HandlerFunc

	// cellsView - геометрия арены для клиента. Считается один раз:
	// поле после старта неизменно.
	cellsView []api.CellView

	// needsInit - сущности, которым ещё не отправлен полный снимок
	needsInit map[uuid.UUID]bool

	spawns    []domain.Vec
	nextSpawn int
}

func NewService(cfg Config) (*GameService, error) {
	// 1. Генерация арены
	built, err := arena.Build(cfg.Arena, cfg.Seed)
	if err != nil {
		return nil, err
	}

	// 2. Создание сцены и регистрация стартовых сущностей (враги, манекены)
	scene := NewScene(built.Field)
	for _, e := range built.Entities {
		scene.RegisterEntity(e)
	}

	s := &GameService{
		Scene:       scene,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		cfg:         cfg,
		joinCh:      make(chan joinRequest, 16),
		quitCh:      make(chan struct{}),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		cellsView:   buildCellsView(built.Field),
		needsInit:   make(map[uuid.UUID]bool),
		spawns:      built.PlayerSpawns,
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionStop] = handlers.WithEmptyPayload(actions.HandleStop)
	s.handlers[domain.ActionAttack] = handlers.WithEmptyPayload(actions.HandleAttack)
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
}

func (s *GameService) Start() {
	go s.RunGameLoop()
}

func (s *GameService) Stop() {
	close(s.quitCh)
}

// Join создает игрока и регистрирует его в сцене. Блокируется до
// ближайшего тика: сцену трогает только игровой цикл.
func (s *GameService) Join(name string) *domain.Entity {
	req := joinRequest{name: name, reply: make(chan *domain.Entity, 1)}
	s.joinCh <- req
	return <-req.reply
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Соответствие ActorID подключению гарантирует транспортный слой.
func (s *GameService) ProcessCommand(actorID uuid.UUID, externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"action":    externalCmd.Action,
		}).Warn("Unknown action")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		ActorID: actorID,
		Payload: externalCmd.Payload,
	}
}

// --- GAME LOOP ---

// RunGameLoop крутит симуляцию с фиксированным шагом. Каждый тик:
// подключения -> команды -> физика и эффекты -> рассылка снимков.
func (s *GameService) RunGameLoop() {
	dt := 1.0 / float64(s.cfg.TickRate)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"component": "game_service",
		"tick_rate": s.cfg.TickRate,
	}).Info("Game loop started")

	for {
		select {
		case <-s.quitCh:
			logger.Log.WithField("component", "game_service").Info("Game loop stopped")
			return

		case <-ticker.C:
			s.drainJoins()
			s.drainCommands()

			if err := s.Scene.TickEntities(dt); err != nil {
				// Сущность вне поля - это баг спавна или шаблона арены.
				// Логируем и продолжаем: остальные играют дальше.
				logger.Log.WithFields(logrus.Fields{
					"component": "game_service",
					"tick":      s.tick,
					"error":     err.Error(),
				}).Error("Tick failed")
			}

			s.tick++
			s.publishUpdate()
		}
	}
}

// drainJoins обрабатывает все накопившиеся заявки на подключение
func (s *GameService) drainJoins() {
	for {
		select {
		case req := <-s.joinCh:
			pos := s.spawns[s.nextSpawn%len(s.spawns)]
			s.nextSpawn++

			player := arena.CreatePlayer(req.name, pos)
			s.Scene.RegisterEntity(player)
			s.needsInit[player.ID] = true

			logger.Log.WithFields(logrus.Fields{
				"component": "game_service",
				"player_id": player.ID,
				"name":      req.name,
			}).Info("Player joined")

			req.reply <- player
		default:
			return
		}
	}
}

// drainCommands выполняет все команды, пришедшие с прошлого тика
func (s *GameService) drainCommands() {
	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		default:
			return
		}
	}
}

// executeCommand находит актора и выполняет хендлер
func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	actor, idx := s.Scene.FirstEntity(func(e *domain.Entity) bool {
		return e.ID == cmd.ActorID
	})
	if actor == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"actor_id":  cmd.ActorID,
		}).Warn("Command from unknown actor")
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Actor:      actor,
		ActorIndex: idx,
		Effects:    s.Scene,
	}

	if _, err := handler(ctx, cmd.Payload); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"actor_id":  cmd.ActorID,
			"action":    cmd.Action.String(),
			"error":     err.Error(),
		}).Warn("Command rejected")
	}
}

// publishUpdate рассылает состояние всем подключенным сущностям
func (s *GameService) publishUpdate() {
	entitiesView := s.buildEntitiesView()

	for _, e := range s.Scene.Entities() {
		if !s.Hub.HasSubscriber(e.ID) {
			continue
		}

		resp := api.ServerResponse{
			Type:       "UPDATE",
			Tick:       s.tick,
			MyEntityID: e.ID.String(),
			Entities:   entitiesView,
		}

		// Первый снимок после логина несет геометрию арены
		if s.needsInit[e.ID] {
			resp.Type = "INIT"
			resp.Cells = s.cellsView
			delete(s.needsInit, e.ID)
		}

		s.Hub.SendTo(e.ID, resp)
	}
}

// buildEntitiesView конвертирует сущности сцены в DTO. Арена общая,
// тумана войны нет: все видят всех.
func (s *GameService) buildEntitiesView() []api.EntityView {
	entities := s.Scene.Entities()
	views := make([]api.EntityView, 0, len(entities))
	for _, e := range entities {
		views = append(views, toEntityView(e))
	}
	return views
}

func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Type: e.Type,
		Name: e.Name,
		Box:  toBoxView(e.Box()),
	}
	view.Velocity.X = e.Velocity().X
	view.Velocity.Y = e.Velocity().Y

	if e.Render != nil {
		view.Render.Symbol = e.Render.Symbol
		view.Render.Color = e.Render.Color
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#fff"
	}

	stats := &api.StatsView{
		HP:     e.Health().Current(),
		MaxHP:  e.Health().Max(),
		IsDead: e.Health().Current() <= 0,
	}
	if e.Combat != nil {
		stats.AttackCooldown = e.Combat.CooldownFraction()
	}
	view.Stats = stats

	return view
}

func toBoxView(b domain.Box) api.BoxView {
	return api.BoxView{
		X: b.Pos().X,
		Y: b.Pos().Y,
		W: b.Size().X,
		H: b.Size().Y,
	}
}

func buildCellsView(field *domain.Field) []api.CellView {
	views := make([]api.CellView, 0, field.Cells())
	for i := 0; i < field.Cells(); i++ {
		cell, err := field.Cell(i)
		if err != nil {
			continue
		}
		views = append(views, api.CellView{
			Index:    cell.Index(),
			Box:      toBoxView(cell.Box()),
			Solidity: uint8(cell.Solidity()),
		})
	}
	return views
}
