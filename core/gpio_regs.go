package core

import "errors"

// RP2040 IO_BANK0 register definitions
// Based on RP2040 datasheet, section 2.19.6.1 (IO - User Bank)

// Peripheral geometry
const (
	IOBank0Base = 0x40014000 // IO_BANK0 base address
	NumGPIOPins = 30         // GPIO0-GPIO29

	gpioRegStride   = 0x08 // GPIOx_STATUS/GPIOx_CTRL pair per pin
	gpioCtrlOffset  = 0x04 // CTRL follows STATUS within the pair
	gpioGroupSize   = 8    // Pins sharing one interrupt register
	gpioGroupStride = 0x04 // INTR0, INTR1, ... are consecutive words
)

// Status field names
const (
	FieldOutFromPeri = "outfromperi"
	FieldOutToPad    = "outtopad"
	FieldOEFromPeri  = "oefromperi"
	FieldOEToPad     = "oetopad"
	FieldInFromPad   = "infrompad"
	FieldInToPeri    = "intoperi"
	FieldIRQFromPad  = "irqfrompad"
	FieldIRQToProc   = "irqtoproc"
)

// Control field names
const (
	FieldFuncSel = "funcsel"
	FieldOutOver = "outover"
	FieldOEOver  = "oeover"
	FieldInOver  = "inover"
	FieldIRQOver = "irqover"
)

var (
	ErrLayoutGap     = errors.New("register layout leaves bits uncovered")
	ErrLayoutOverlap = errors.New("register layout fields overlap")
	ErrLayoutWidth   = errors.New("register layout field exceeds 32 bits")
)

// Field is one named bit range of a 32-bit register
type Field struct {
	Name     string
	Offset   uint8 // LSB position
	Width    uint8 // Number of bits
	Reserved bool  // Decoded and carried, never reported
}

// Mask returns the field's bits in register position
func (f Field) Mask() uint32 {
	return uint32((uint64(1)<<f.Width)-1) << f.Offset
}

// Layout lists the fields of a register from bit 0 upwards
type Layout []Field

// GPIOx_STATUS (read only)
var StatusLayout = Layout{
	{Name: "reserved0", Offset: 0, Width: 8, Reserved: true},
	{Name: FieldOutFromPeri, Offset: 8, Width: 1}, // Output signal from selected peripheral, before override
	{Name: FieldOutToPad, Offset: 9, Width: 1},    // Output signal to pad after override
	{Name: "reserved1", Offset: 10, Width: 2, Reserved: true},
	{Name: FieldOEFromPeri, Offset: 12, Width: 1}, // Output enable from peripheral, before override
	{Name: FieldOEToPad, Offset: 13, Width: 1},    // Output enable to pad after override
	{Name: "reserved2", Offset: 14, Width: 3, Reserved: true},
	{Name: FieldInFromPad, Offset: 17, Width: 1}, // Input signal from pad, before override
	{Name: "reserved3", Offset: 18, Width: 1, Reserved: true},
	{Name: FieldInToPeri, Offset: 19, Width: 1}, // Input signal to peripheral after override
	{Name: "reserved4", Offset: 20, Width: 4, Reserved: true},
	{Name: FieldIRQFromPad, Offset: 24, Width: 1}, // Interrupt from pad, before override
	{Name: "reserved5", Offset: 25, Width: 1, Reserved: true},
	{Name: FieldIRQToProc, Offset: 26, Width: 1}, // Interrupt to processors after override
	{Name: "reserved6", Offset: 27, Width: 5, Reserved: true},
}

// GPIOx_CTRL (read/write)
var ControlLayout = Layout{
	{Name: FieldFuncSel, Offset: 0, Width: 5}, // Function select, reset 0x1f
	{Name: "reserved0", Offset: 5, Width: 3, Reserved: true},
	{Name: FieldOutOver, Offset: 8, Width: 2},
	{Name: "reserved1", Offset: 10, Width: 2, Reserved: true},
	{Name: FieldOEOver, Offset: 12, Width: 2},
	{Name: "reserved2", Offset: 14, Width: 2, Reserved: true},
	{Name: FieldInOver, Offset: 16, Width: 2},
	{Name: "reserved3", Offset: 18, Width: 10, Reserved: true},
	{Name: FieldIRQOver, Offset: 28, Width: 2},
	{Name: "reserved4", Offset: 30, Width: 2, Reserved: true},
}

// Report field order, chosen for readability (MSB-side signals first)
var (
	statusReportOrder = []string{
		FieldIRQToProc, FieldIRQFromPad, FieldInToPeri, FieldInFromPad,
		FieldOEToPad, FieldOEFromPeri, FieldOutToPad, FieldOutFromPeri,
	}
	controlReportOrder = []string{
		FieldIRQOver, FieldInOver, FieldOEOver, FieldOutOver, FieldFuncSel,
	}
)

// Field looks up a field by name
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks that the fields tile bits 0-31 exactly once
func (l Layout) Validate() error {
	var covered uint32
	for _, f := range l {
		if f.Width == 0 || uint(f.Offset)+uint(f.Width) > 32 {
			return ErrLayoutWidth
		}
		mask := f.Mask()
		if covered&mask != 0 {
			return ErrLayoutOverlap
		}
		covered |= mask
	}
	if covered != 0xFFFFFFFF {
		return ErrLayoutGap
	}
	return nil
}
