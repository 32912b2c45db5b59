package config

import (
	"liarsdice-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Liar's Dice server
type Config struct {
	loaded bool

	// MaxPlayersPerRoom caps how many participants may join a single room
	MaxPlayersPerRoom int `yaml:"maxPlayersPerRoom" envconfig:"max_players_per_room"`

	Game struct {
		NumberOfDice  int `yaml:"numberOfDice" envconfig:"number_of_dice"`
		NumberOfSides int `yaml:"numberOfSides" envconfig:"number_of_sides"`
	} `yaml:"game"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional; defaults and environment variables are enough to run
func Load() error {
	config = Config{}
	config.MaxPlayersPerRoom = 10
	config.Game.NumberOfDice = 5
	config.Game.NumberOfSides = 6

	configFile := util.Getenv("LDS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("lds", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
