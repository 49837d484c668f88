package rddsql

import (
	"os"

	"github.com/dopsilva/rddsql/engine"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config descreve a conexão com o banco
type Config struct {
	Engine       engine.Engine `yaml:"engine"`
	URL          string        `yaml:"url"`
	Debug        bool          `yaml:"debug"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	// Ping valida a conexão durante o Connect
	Ping bool `yaml:"ping"`
}

// LoadConfig lê a configuração de um arquivo yaml
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "rddsql: read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "rddsql: parse config %s", path)
	}
	return cfg.Normalize(), nil
}

// Normalize preenche os valores padrão
func (c Config) Normalize() Config {
	// o sqlite não suporta escrita concorrente
	if c.Engine == engine.SQLite && c.MaxOpenConns == 0 {
		c.MaxOpenConns = 1
	}
	return c
}
