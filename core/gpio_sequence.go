package core

// SequenceStep is one configuration change followed by a dump.
// A step with a nil Apply dumps the pin as found.
type SequenceStep struct {
	Label string // Printed after Apply succeeds, before the dump
	Apply func(d GPIODriver, pin GPIOPin) error
}

// DefaultSequence initializes a pin as a SIO output and inverts its output,
// dumping the registers before the first change and after each one
func DefaultSequence() []SequenceStep {
	return []SequenceStep{
		{},
		{
			Label: "GPIO initialized",
			Apply: func(d GPIODriver, pin GPIOPin) error {
				return d.InitPin(pin)
			},
		},
		{
			Label: "GPIO set dir",
			Apply: func(d GPIODriver, pin GPIOPin) error {
				return d.SetDirection(pin, true)
			},
		},
		{
			Label: "GPIO set outover",
			Apply: func(d GPIODriver, pin GPIOPin) error {
				return d.SetOutputOverride(pin, OverrideInvert)
			},
		},
	}
}

// FunctionStep routes the pin to fn
func FunctionStep(label string, fn FuncSel) SequenceStep {
	return SequenceStep{
		Label: label,
		Apply: func(d GPIODriver, pin GPIOPin) error {
			return d.SetFunction(pin, fn)
		},
	}
}

// RunSequence applies each step to pin and writes the step label and the
// resulting report to out, one line per call. The pin is validated before
// anything is applied; the first failing step stops the run with nothing
// further written.
func RunSequence(in *Inspector, d GPIODriver, pin GPIOPin, steps []SequenceStep, out DebugWriter) error {
	if err := in.RegisterMap().CheckPin(pin); err != nil {
		return err
	}

	for i, step := range steps {
		if step.Apply != nil {
			DebugPrintln("sequence step " + utoa(uint32(i)) + ": " + step.Label)
			if err := step.Apply(d, pin); err != nil {
				return err
			}
		}
		if step.Label != "" {
			out(step.Label)
		}

		s, err := in.Snapshot(pin)
		if err != nil {
			return err
		}
		for _, line := range ReportLines(s) {
			out(line)
		}
	}
	return nil
}
