// Package config loads obtkit settings from a YAML file, an optional .env
// file and the process environment.
//
// It uses Viper for the file and environment layers and godotenv for .env
// files. Environment variables override file values; nested keys are
// matched from underscore-separated names (LOGGING_LEVEL -> logging.level).
//
// # Usage
//
//	cfg, err := config.Load("billing", config.WithConfigFile("config.yml"))
//
// A loaded config registers its bool_words tables with util, so
// util.LookupBoolWords("de") resolves languages declared in the file:
//
//	bool_words:
//	  de: ["Nein", "Ja"]
package config
