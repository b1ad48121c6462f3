// Package config provides the settings for logging and key generation.
//
// Settings are plain structs tagged for mapstructure and validated with
// go-playground/validator. Key generation settings can be layered from
// RSA_CORE_* environment variables on top of the defaults.
package config
