//go:build rp2040

package main

import (
	"machine"
)

// InitUSB initializes USB serial communication
// TinyGo automatically sets up USB CDC-ACM on RP2040
func InitUSB() {
	// Configure machine.Serial (which is USB CDC on RP2040)
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}
}

// USBConnected returns true once the host has asserted DTR on the CDC port
func USBConnected() bool {
	return machine.Serial.DTR()
}

// ConsolePrintln writes a line to the USB console with a CRLF terminator
func ConsolePrintln(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte("\r\n"))
}
