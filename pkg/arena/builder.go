package arena

import (
	"fmt"
	"math/rand"

	"arena-server/internal/domain"
)

// Result - собранная арена: поле, стартовые сущности и точки появления игроков.
type Result struct {
	Field        *domain.Field
	Entities     []*domain.Entity
	PlayerSpawns []domain.Vec
}

// Build собирает арену из именованного шаблона. Сид определяет имена
// врагов: одинаковый сид - одинаковая арена.
func Build(name string, seed int64) (*Result, error) {
	rows, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena template %q", name)
	}
	return buildFromRows(rows, rand.New(rand.NewSource(seed)))
}

func buildFromRows(rows []string, rng *rand.Rand) (*Result, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("arena template is empty")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("arena template row %d: width %d, want %d", i, len(row), width)
		}
	}

	res := &Result{}

	// --- 1. Ячейки поля ---
	// Соседние тайлы одной проходимости в строке склеиваются в одну
	// широкую ячейку: меньше ячеек, больше рёбер "одна-ко-многим" между
	// строками.
	var cells []domain.Cell
	for y, row := range rows {
		x := 0
		for x < width {
			solidity := tileSolidity(row[x])
			run := 1
			for x+run < width && tileSolidity(row[x+run]) == solidity {
				run++
			}

			box, err := domain.NewBox(
				float64(x)*TileSize,
				float64(y)*TileSize,
				float64(run)*TileSize,
				TileSize,
			)
			if err != nil {
				return nil, fmt.Errorf("arena cell at (%d,%d): %w", x, y, err)
			}
			cells = append(cells, domain.NewCell(solidity, box))

			x += run
		}
	}

	field, err := domain.NewField(cells)
	if err != nil {
		return nil, err
	}
	res.Field = field

	// --- 2. Сущности и точки появления ---
	for y, row := range rows {
		for x := 0; x < width; x++ {
			center := domain.Vec{
				X: float64(x)*TileSize + TileSize/2,
				Y: float64(y)*TileSize + TileSize/2,
			}

			switch row[x] {
			case 'P':
				res.PlayerSpawns = append(res.PlayerSpawns, center)
			case 'E':
				name := enemyNames[rng.Intn(len(enemyNames))]
				res.Entities = append(res.Entities, CreateEnemy(name, center))
			case 'D':
				res.Entities = append(res.Entities, CreateDummy(center))
			}
		}
	}

	if len(res.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("arena template has no player spawns")
	}

	return res, nil
}

// tileSolidity конвертирует символ шаблона в маску проходимости ячейки.
// Тайлы со спавнами - обычный пол.
func tileSolidity(tile byte) domain.Solidity {
	if tile == '#' {
		return domain.Solid
	}
	return domain.NoSolidity
}
