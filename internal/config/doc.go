// Package config provides layered configuration loading for textpipe,
// adapted from gokit's config package: a YAML file (optional), environment
// variables, and CLI flags are composed through Viper, then validated and
// defaulted.
package config
