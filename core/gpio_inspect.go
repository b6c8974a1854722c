package core

// Inspector reads and formats the registers of a GPIO bank.
// It never writes to the bank and keeps no state between calls.
type Inspector struct {
	regs   RegisterMap
	reader RegisterReader
}

// NewInspector creates an Inspector for a bank read through reader
func NewInspector(regs RegisterMap, reader RegisterReader) *Inspector {
	return &Inspector{
		regs:   regs,
		reader: reader,
	}
}

// NewDefaultInspector inspects the RP2040 user bank through the registered reader
func NewDefaultInspector() *Inspector {
	return NewInspector(DefaultRegisterMap, MustRegisterReader())
}

// RegisterMap returns the bank geometry used for address computation
func (in *Inspector) RegisterMap() RegisterMap {
	return in.regs
}

// Snapshot reads every reported register for pin.
// An invalid pin returns ErrInvalidPin before any read is performed.
func (in *Inspector) Snapshot(pin GPIOPin) (*Snapshot, error) {
	if err := in.regs.CheckPin(pin); err != nil {
		return nil, err
	}

	// Resolve all addresses first so a failure can't leave a partial read
	var addrs [numRegisterKinds]RegisterAddress
	for kind := RegStatus; kind < numRegisterKinds; kind++ {
		addr, err := in.regs.AddressOf(kind, pin)
		if err != nil {
			return nil, err
		}
		addrs[kind] = addr
	}

	s := &Snapshot{Pin: pin}
	s.Status = StatusWord(in.reader.Read32(addrs[RegStatus]))
	s.Control = ControlWord(in.reader.Read32(addrs[RegControl]))
	for kind := RegIntr; kind < numRegisterKinds; kind++ {
		s.Interrupts[kind-RegIntr] = in.reader.Read32(addrs[kind])
	}
	return s, nil
}

// Dump reads pin's registers and returns the formatted report
func (in *Inspector) Dump(pin GPIOPin) (string, error) {
	s, err := in.Snapshot(pin)
	if err != nil {
		return "", err
	}
	return FormatReport(s), nil
}
