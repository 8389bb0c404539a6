package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/controls.yaml
var defaultControlsYAML []byte

const controlsFile = "controls.yaml"

// LoadControls загружает раскладку управления.
// Порядок поиска: customPath -> ~/.kokaton/controls.yaml -> ./configs/controls.yaml -> встроенный default.
// Явно указанный файл обязан существовать и быть корректным; остальные источники
// пропускаются молча, если их нет или они не парсятся.
func LoadControls(customPath string) (Controls, error) {
	if customPath != "" {
		return readControls(customPath)
	}

	candidates := []string{
		userConfigPath(controlsFile),
		filepath.Join("configs", controlsFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readControls(path); err == nil {
			return cfg, nil
		}
	}

	return ParseControls(defaultControlsYAML)
}

// ParseControls разбирает YAML-раскладку и проверяет её.
func ParseControls(data []byte) (Controls, error) {
	var cfg Controls
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Controls{}, fmt.Errorf("config: cannot parse controls: %w", err)
	}
	if cfg.Pause == "" {
		cfg.Pause = DefaultControls().Pause
	}
	if cfg.Start == "" {
		cfg.Start = DefaultControls().Start
	}
	if err := cfg.Validate(); err != nil {
		return Controls{}, err
	}
	return cfg, nil
}

func readControls(path string) (Controls, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Controls{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := ParseControls(data)
	if err != nil {
		return Controls{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath возвращает путь к пользовательскому файлу или "", если домашний каталог недоступен.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kokaton", filename)
}
