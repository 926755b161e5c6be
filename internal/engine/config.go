package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генератора. От него зависят стартовые позиции врагов.
	Seed int64 `yaml:"seed"`

	// TickRate - частота симуляции, тиков в секунду.
	TickRate int `yaml:"tickRate"`

	// Arena - имя шаблона арены из встроенного набора.
	Arena string `yaml:"arena"`

	// Addr - адрес HTTP-сервера (host:port).
	Addr string `yaml:"addr"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:     time.Now().UnixNano(),
		TickRate: 30,
		Arena:    "default",
		Addr:     ":8080",
	}
}

// LoadConfig читает конфиг из YAML-файла поверх значений по умолчанию.
// Отсутствующие в файле поля сохраняют дефолты.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("config %s: tickRate must be positive, got %d", path, cfg.TickRate)
	}
	return cfg, nil
}
