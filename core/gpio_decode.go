package core

// FieldValue is one decoded bit field
type FieldValue struct {
	Field Field
	Value uint32
}

// FieldValues holds decoded fields in layout order
type FieldValues []FieldValue

// Get returns the value of the named field
func (v FieldValues) Get(name string) (uint32, bool) {
	for _, fv := range v {
		if fv.Field.Name == name {
			return fv.Value, true
		}
	}
	return 0, false
}

// Set replaces the value of the named field, truncated to its width.
// Returns false if the field does not exist.
func (v FieldValues) Set(name string, value uint32) bool {
	for i := range v {
		if v[i].Field.Name == name {
			v[i].Value = value & (v[i].Field.Mask() >> v[i].Field.Offset)
			return true
		}
	}
	return false
}

// Decode splits a raw register value into its fields.
// Every bit is covered by the layout, reserved spans included, so decoding
// never fails.
func (l Layout) Decode(raw uint32) FieldValues {
	values := make(FieldValues, len(l))
	for i, f := range l {
		values[i] = FieldValue{
			Field: f,
			Value: (raw & f.Mask()) >> f.Offset,
		}
	}
	return values
}

// Encode packs field values back into a raw register value.
// Reserved fields are packed like any other, so Encode(Decode(x)) == x.
func (l Layout) Encode(values FieldValues) uint32 {
	var raw uint32
	for _, f := range l {
		v, _ := values.Get(f.Name)
		raw |= (v << f.Offset) & f.Mask()
	}
	return raw
}

// StatusWord is a raw GPIOx_STATUS value
type StatusWord uint32

// Fields decodes the status word
func (s StatusWord) Fields() FieldValues {
	return StatusLayout.Decode(uint32(s))
}

func (s StatusWord) field(name string) uint32 {
	v, _ := s.Fields().Get(name)
	return v
}

// OutToPad returns the output level driven to the pad
func (s StatusWord) OutToPad() bool { return s.field(FieldOutToPad) != 0 }

// OEToPad returns the output enable driven to the pad
func (s StatusWord) OEToPad() bool { return s.field(FieldOEToPad) != 0 }

// InFromPad returns the input level seen at the pad
func (s StatusWord) InFromPad() bool { return s.field(FieldInFromPad) != 0 }

// String renders the named fields in report order
func (s StatusWord) String() string {
	return FormatFields(s.Fields(), statusReportOrder)
}

// ControlWord is a raw GPIOx_CTRL value
type ControlWord uint32

// Fields decodes the control word
func (c ControlWord) Fields() FieldValues {
	return ControlLayout.Decode(uint32(c))
}

func (c ControlWord) field(name string) uint32 {
	v, _ := c.Fields().Get(name)
	return v
}

// FuncSel returns the selected peripheral function
func (c ControlWord) FuncSel() FuncSel { return FuncSel(c.field(FieldFuncSel)) }

// OutOver returns the output override mode
func (c ControlWord) OutOver() OverrideMode { return OverrideMode(c.field(FieldOutOver)) }

// OEOver returns the output enable override mode
func (c ControlWord) OEOver() OverrideMode { return OverrideMode(c.field(FieldOEOver)) }

// InOver returns the input override mode
func (c ControlWord) InOver() OverrideMode { return OverrideMode(c.field(FieldInOver)) }

// IRQOver returns the interrupt override mode
func (c ControlWord) IRQOver() OverrideMode { return OverrideMode(c.field(FieldIRQOver)) }

// String renders the named fields in report order
func (c ControlWord) String() string {
	return FormatFields(c.Fields(), controlReportOrder)
}

// OverrideMode is the 2-bit value of an *OVER field
type OverrideMode uint8

const (
	OverrideNormal OverrideMode = 0 // Pass the peripheral signal through
	OverrideInvert OverrideMode = 1 // Invert the peripheral signal
	OverrideLow    OverrideMode = 2 // Force low / disable
	OverrideHigh   OverrideMode = 3 // Force high / enable
)

func (m OverrideMode) String() string {
	switch m {
	case OverrideNormal:
		return "normal"
	case OverrideInvert:
		return "invert"
	case OverrideLow:
		return "low"
	case OverrideHigh:
		return "high"
	}
	return "invalid"
}

// FuncSel is the 5-bit function select value
type FuncSel uint8

// RP2040 function select values (datasheet table 279)
const (
	FuncF0   FuncSel = 0
	FuncSPI  FuncSel = 1
	FuncUART FuncSel = 2
	FuncI2C  FuncSel = 3
	FuncPWM  FuncSel = 4
	FuncSIO  FuncSel = 5
	FuncPIO0 FuncSel = 6
	FuncPIO1 FuncSel = 7
	FuncGPCK FuncSel = 8
	FuncUSB  FuncSel = 9
	FuncNull FuncSel = 0x1f // Reset value, pad disconnected
)

var funcSelNames = map[FuncSel]string{
	FuncF0:   "f0",
	FuncSPI:  "spi",
	FuncUART: "uart",
	FuncI2C:  "i2c",
	FuncPWM:  "pwm",
	FuncSIO:  "sio",
	FuncPIO0: "pio0",
	FuncPIO1: "pio1",
	FuncGPCK: "gpck",
	FuncUSB:  "usb",
	FuncNull: "null",
}

func (f FuncSel) String() string {
	if name, ok := funcSelNames[f]; ok {
		return name
	}
	return "f" + utoa(uint32(f))
}

// IRQ event bits, 4 per pin in every interrupt register
const (
	IRQLevelLow  = 1 << 0
	IRQLevelHigh = 1 << 1
	IRQEdgeLow   = 1 << 2
	IRQEdgeHigh  = 1 << 3
)

// IRQEvents extracts a pin's 4 event bits from an interrupt register word
func IRQEvents(word uint32, pin GPIOPin) uint8 {
	shift := 4 * (uint32(pin) % gpioGroupSize)
	return uint8((word >> shift) & 0xf)
}
