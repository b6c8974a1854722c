//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"gpioinspect/core"
	"machine"
	"runtime/volatile"
	"unsafe"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// RPGPIODriver implements the GPIODriver interface for RP2040
type RPGPIODriver struct {
	regs core.RegisterMap
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		regs: core.DefaultRegisterMap,
	}
}

// InitPin selects SIO, disables the output and drives it low
func (d *RPGPIODriver) InitPin(pin core.GPIOPin) error {
	if err := d.regs.CheckPin(pin); err != nil {
		return err
	}

	mask := uint32(1) << pin
	rp.SIO.GPIO_OE_CLR.Set(mask)
	rp.SIO.GPIO_OUT_CLR.Set(mask)

	// Configure as input; TinyGo selects the SIO function for us
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInput})
	return nil
}

// SetDirection enables (output) or disables (input) the SIO output driver
func (d *RPGPIODriver) SetDirection(pin core.GPIOPin, output bool) error {
	if err := d.regs.CheckPin(pin); err != nil {
		return err
	}

	mask := uint32(1) << pin
	if output {
		rp.SIO.GPIO_OE_SET.Set(mask)
	} else {
		rp.SIO.GPIO_OE_CLR.Set(mask)
	}
	return nil
}

// SetOutputOverride writes the OUTOVER field of GPIOx_CTRL
func (d *RPGPIODriver) SetOutputOverride(pin core.GPIOPin, mode core.OverrideMode) error {
	return d.replaceCtrlField(pin, core.FieldOutOver, uint32(mode))
}

// SetFunction routes the pin to a peripheral function.
// CTRL is overwritten with FUNCSEL alone, clearing all overrides.
func (d *RPGPIODriver) SetFunction(pin core.GPIOPin, fn core.FuncSel) error {
	if err := d.regs.CheckPin(pin); err != nil {
		return err
	}

	switch fn {
	case core.FuncPIO0:
		// Configure also sets up the pad and zeroes CTRL apart from FUNCSEL
		machine.Pin(pin).Configure(machine.PinConfig{Mode: rp2pio.PIO0.PinMode()})
	case core.FuncPIO1:
		machine.Pin(pin).Configure(machine.PinConfig{Mode: rp2pio.PIO1.PinMode()})
	default:
		return d.writeCtrl(pin, uint32(fn))
	}
	return nil
}

// writeCtrl replaces the whole GPIOx_CTRL word
func (d *RPGPIODriver) writeCtrl(pin core.GPIOPin, value uint32) error {
	field, _ := core.ControlLayout.Field(core.FieldFuncSel)
	addr, err := d.regs.AddressOf(core.RegControl, pin)
	if err != nil {
		return err
	}

	ctrlReg := (*volatile.Register32)(unsafe.Pointer(uintptr(addr)))
	ctrlReg.Set(value & field.Mask())
	return nil
}

// replaceCtrlField does a read-modify-write of one GPIOx_CTRL field,
// using the same layout the inspector decodes with
func (d *RPGPIODriver) replaceCtrlField(pin core.GPIOPin, name string, value uint32) error {
	field, ok := core.ControlLayout.Field(name)
	if !ok {
		return errors.New("unknown control field")
	}

	addr, err := d.regs.AddressOf(core.RegControl, pin)
	if err != nil {
		return err
	}

	ctrlReg := (*volatile.Register32)(unsafe.Pointer(uintptr(addr)))
	ctrlReg.ReplaceBits(value, field.Mask()>>field.Offset, field.Offset)
	return nil
}
