//go:build !tinygo || !bootdebug

package app

import "elitewatch/hal"

func bootStep(hal.HAL, string) {}
