// Package config holds the root command line definition.
package config

import (
	"github.com/Alia5/touchbridge/internal/cmd"
	"github.com/Alia5/touchbridge/internal/log"
)

// CLI is the root kong model.
type CLI struct {
	ConfigFile string     `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"TOUCHBRIDGE_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Run    cmd.Translate     `cmd:"" default:"withargs" help:"Translate pointer input into virtual touchscreen commands"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
