package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del sorter.
type Config struct {
	QuestionsPath  string `env:"KEIRSEY_QUESTIONS_PATH"`
	CategoriesPath string `env:"KEIRSEY_CATEGORIES_PATH"`
	LogLevel       string `env:"KEIRSEY_LOG_LEVEL" envDefault:"warn"`
	ClearScreen    bool   `env:"KEIRSEY_CLEAR_SCREEN" envDefault:"true"`
	NoColor        string `env:"NO_COLOR"`
}

// ColorDisabled sigue la convencion de no-color.org: cualquier valor no vacio.
func (c *Config) ColorDisabled() bool {
	return c.NoColor != ""
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
