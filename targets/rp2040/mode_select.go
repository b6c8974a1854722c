//go:build rp2040

package main

import "gpioinspect/core"

// InspectConfig determines which pin is inspected and how
type InspectConfig struct {
	// Pin to configure and dump
	Pin core.GPIOPin

	// Append a step routing the pin to PIO0 after the output override
	RoutePIO bool

	// Emit [DEBUG] lines between steps
	Debug bool

	// Maximum time to wait for the host to open the console (0 = don't wait)
	ConsoleWaitMicros uint64
}

// GetInspectConfig returns the current inspection configuration
// This can be modified at compile time
func GetInspectConfig() InspectConfig {
	return InspectConfig{
		Pin:               7,
		RoutePIO:          true,
		Debug:             false,
		ConsoleWaitMicros: 3000000,
	}
}
