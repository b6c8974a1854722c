package core

import "errors"

var (
	ErrInvalidPin      = errors.New("GPIO pin out of range")
	ErrUnknownRegister = errors.New("unknown register kind")
)

// RegisterAddress is an absolute memory-mapped register address
type RegisterAddress uint32

// RegisterKind selects one of the registers reported for a pin
type RegisterKind uint8

const (
	RegStatus  RegisterKind = iota // GPIOx_STATUS
	RegControl                     // GPIOx_CTRL

	// Interrupt registers, one word per group of 8 pins
	RegIntr            // INTRx raw interrupts
	RegProc0Inte       // PROC0_INTEx
	RegProc0Intf       // PROC0_INTFx
	RegProc0Ints       // PROC0_INTSx
	RegProc1Inte       // PROC1_INTEx
	RegProc1Intf       // PROC1_INTFx
	RegProc1Ints       // PROC1_INTSx
	RegDormantWakeInte // DORMANT_WAKE_INTEx
	RegDormantWakeIntf // DORMANT_WAKE_INTFx
	RegDormantWakeInts // DORMANT_WAKE_INTSx
	numRegisterKinds
)

// Register counts per report
const (
	NumRegisterKinds      = int(numRegisterKinds)
	NumInterruptRegisters = int(numRegisterKinds - RegIntr)
)

// Offsets of the first word (pins 0-7) of each interrupt register array
var groupRegOffsets = [numRegisterKinds]uint32{
	RegIntr:            0x0f0,
	RegProc0Inte:       0x100,
	RegProc0Intf:       0x110,
	RegProc0Ints:       0x120,
	RegProc1Inte:       0x130,
	RegProc1Intf:       0x140,
	RegProc1Ints:       0x150,
	RegDormantWakeInte: 0x160,
	RegDormantWakeIntf: 0x170,
	RegDormantWakeInts: 0x180,
}

// Report labels, right-aligned to the width of "control"
var registerLabels = [numRegisterKinds]string{
	RegStatus:          "     status",
	RegControl:         "    control",
	RegIntr:            "      intr0",
	RegProc0Inte:       " proc0 inte",
	RegProc0Intf:       " proc0 intf",
	RegProc0Ints:       " proc0 ints",
	RegProc1Inte:       " proc1 inte",
	RegProc1Intf:       " proc1 intf",
	RegProc1Ints:       " proc1 ints",
	RegDormantWakeInte: " dr wk inte",
	RegDormantWakeIntf: " dr wk intf",
	RegDormantWakeInts: " dr wk ints",
}

// IsGroupRegister reports whether the register is shared by 8 pins
func (k RegisterKind) IsGroupRegister() bool {
	return k >= RegIntr && k < numRegisterKinds
}

// Label returns the register's name as printed in a report
func (k RegisterKind) Label() string {
	if k >= numRegisterKinds {
		return "unknown"
	}
	return registerLabels[k]
}

// RegisterMap locates a GPIO bank in the address space
type RegisterMap struct {
	Base    RegisterAddress
	NumPins uint32
}

// DefaultRegisterMap is the RP2040 user bank
var DefaultRegisterMap = RegisterMap{
	Base:    IOBank0Base,
	NumPins: NumGPIOPins,
}

// CheckPin returns ErrInvalidPin when pin is not in the bank
func (m RegisterMap) CheckPin(pin GPIOPin) error {
	if uint32(pin) >= m.NumPins {
		return ErrInvalidPin
	}
	return nil
}

// AddressOf computes the absolute address of a register for a pin.
// No hardware is touched.
func (m RegisterMap) AddressOf(kind RegisterKind, pin GPIOPin) (RegisterAddress, error) {
	if err := m.CheckPin(pin); err != nil {
		return 0, err
	}

	switch {
	case kind == RegStatus:
		return m.Base + RegisterAddress(uint32(pin)*gpioRegStride), nil
	case kind == RegControl:
		return m.Base + RegisterAddress(uint32(pin)*gpioRegStride+gpioCtrlOffset), nil
	case kind.IsGroupRegister():
		group := uint32(pin) / gpioGroupSize
		return m.Base + RegisterAddress(groupRegOffsets[kind]+group*gpioGroupStride), nil
	}
	return 0, ErrUnknownRegister
}
