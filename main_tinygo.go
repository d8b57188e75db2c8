//go:build tinygo

package main

import (
	"elitewatch/app"
	"elitewatch/hal"
)

func main() {
	app.Run(hal.New(), app.Config{})
}
