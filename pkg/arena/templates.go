package arena

// TileSize - сторона одного тайла шаблона в мировых единицах.
const TileSize = 10.0

// Легенда шаблона:
//
//	'#' - стена (непроходимая ячейка)
//	'.' - пол
//	'P' - пол + точка появления игрока
//	'E' - пол + враг
//	'D' - пол + манекен для отработки ударов
//
// Все строки шаблона должны быть одной длины.
var templates = map[string][]string{
	// Прямоугольная арена с крестом из стен в центре
	"default": {
		"################",
		"#P....#....#..P#",
		"#.....#.D..#...#",
		"#..#..#....#...#",
		"#..#.....E.....#",
		"#..####..####..#",
		"#......E.......#",
		"#..#........#..#",
		"#..#..E..D..#..#",
		"#P....####....P#",
		"################",
	},

	// Маленькая арена без препятствий (для тестов и дуэлей)
	"pit": {
		"########",
		"#P....P#",
		"#......#",
		"#..EE..#",
		"#......#",
		"########",
	},
}

// enemyNames - из них выбирается имя очередного врага (детерминированно по сиду)
var enemyNames = []string{
	"Жнец",
	"Страж",
	"Охотник",
	"Тень",
	"Клинок",
}
