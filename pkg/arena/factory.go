package arena

import (
	"arena-server/internal/domain"
)

// Параметры сущностей по умолчанию. Размеры меньше тайла, чтобы
// сущность целиком помещалась в одну ячейку при появлении.
const (
	playerSize     = 6.0
	playerSpeed    = 40.0
	playerHP       = 100.0
	playerDamage   = 10.0
	playerCooldown = 1.2

	enemySize  = 6.0
	enemySpeed = 25.0
	enemyHP    = 30.0

	dummySize = 8.0
	dummyHP   = 50.0
)

// CreatePlayer создает игрока с центром в точке появления.
func CreatePlayer(name string, center domain.Vec) *domain.Entity {
	e, err := domain.NewEntity(
		domain.EntityTypePlayer,
		name,
		centeredBox(center, playerSize),
		playerSpeed,
		playerHP,
		domain.Solid,
	)
	if err != nil {
		// Параметры статичны, ошибка здесь - ошибка программиста
		panic(err)
	}

	e.Render = &domain.RenderComponent{Symbol: "@", Color: "#22D3EE"}
	e.Combat = &domain.CombatComponent{
		Damage:   playerDamage,
		Cooldown: playerCooldown,
	}
	return e
}

// CreateEnemy создает враждебного преследователя.
func CreateEnemy(name string, center domain.Vec) *domain.Entity {
	e, err := domain.NewEntity(
		domain.EntityTypeEnemy,
		name,
		centeredBox(center, enemySize),
		enemySpeed,
		enemyHP,
		domain.Solid,
	)
	if err != nil {
		panic(err)
	}

	e.Render = &domain.RenderComponent{Symbol: "r", Color: "#EF4444"}
	e.AI = &domain.AIComponent{IsHostile: true}
	return e
}

// CreateDummy создает неподвижный манекен для отработки ударов.
func CreateDummy(center domain.Vec) *domain.Entity {
	e, err := domain.NewEntity(
		domain.EntityTypeDummy,
		"Манекен",
		centeredBox(center, dummySize),
		0,
		dummyHP,
		domain.Solid,
	)
	if err != nil {
		panic(err)
	}

	e.Render = &domain.RenderComponent{Symbol: "T", Color: "#A3A3A3"}
	return e
}

func centeredBox(center domain.Vec, size float64) domain.Box {
	return domain.MustBox(center.X-size/2, center.Y-size/2, size, size)
}
