// Package features содержит toggle сервиса, сгенерированные из configs/toggles.toml.
package features

//go:generate go run github.com/vovanwin/enumtoggles/cmd/enumtoggles gen --manifest=../../configs/toggles.toml --output=.
