package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv consults a .env file in dir, the same overlay mechanism
// PayPerPlayHosting uses for its database and RCON credentials. Missing
// files are not an error -- the overlay is optional.
func LoadDotEnv(dir string) error {
	path := dir + "/.env"
	if !Exists(path) {
		return nil
	}
	return godotenv.Load(path)
}

// OverlayEnv applies a small set of environment overrides on top of a
// loaded Configuration, letting an operator override the RCON password
// (the one field too sensitive to put in a checked-in JSON file) without
// touching the config file.
func OverlayEnv(cfg Configuration) Configuration {
	if v := os.Getenv("LAZYGATE_RCON_PASSWORD"); v != "" {
		cfg.Server.RconPassword = v
	}
	if v := os.Getenv("LAZYGATE_PUBLIC_ADDRESS"); v != "" {
		cfg.Network.PublicAddress = v
	}
	if v := os.Getenv("LAZYGATE_BACKEND_ADDRESS"); v != "" {
		cfg.Network.BackendAddress = v
	}
	return cfg
}
