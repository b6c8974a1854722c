package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface used by the inspection sequence.
// Platform-specific implementations handle actual hardware control; these are
// the only operations in the program that change pin configuration.
type GPIODriver interface {
	// InitPin selects the SIO function and leaves the pin an input driving low
	InitPin(pin GPIOPin) error

	// SetDirection makes the pin an output (true) or an input (false)
	SetDirection(pin GPIOPin, output bool) error

	// SetOutputOverride sets the OUTOVER field of the pin's CTRL register
	SetOutputOverride(pin GPIOPin, mode OverrideMode) error

	// SetFunction routes the pin to a peripheral function. The whole CTRL
	// register is rewritten with only FUNCSEL set, so every *OVER field
	// returns to normal, as the RP2040 SDK's gpio_set_function does.
	SetFunction(pin GPIOPin, fn FuncSel) error
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
