// Package config loads typed configuration structs from environment
// variables.
//
// It combines github.com/joho/godotenv (optional .env file support for local
// development) with github.com/caarlos0/env (struct tag based parsing).
// Every call parses directly into the caller's struct; there is no hidden
// process-wide configuration state. The intended pattern is to load each
// configuration object once in main and inject it into the components that
// need it, which keeps tests free to construct configs with arbitrary values.
//
//	var authCfg auth.Config
//	config.MustLoad(&authCfg)
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
//
// Required variables (tagged `env:"NAME,required"`) that are absent make
// Load return an error and MustLoad panic, turning missing secrets into a
// fatal startup condition instead of a per-request failure.
package config
