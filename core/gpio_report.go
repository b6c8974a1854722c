package core

import "strings"

// Snapshot holds one pass of raw register reads for a pin
type Snapshot struct {
	Pin        GPIOPin
	Status     StatusWord
	Control    ControlWord
	Interrupts [NumInterruptRegisters]uint32 // Indexed by kind - RegIntr
}

// Interrupt returns the word read for a group register kind
func (s *Snapshot) Interrupt(kind RegisterKind) uint32 {
	if !kind.IsGroupRegister() {
		return 0
	}
	return s.Interrupts[kind-RegIntr]
}

// Register returns the raw word of any reported register
func (s *Snapshot) Register(kind RegisterKind) uint32 {
	switch kind {
	case RegStatus:
		return uint32(s.Status)
	case RegControl:
		return uint32(s.Control)
	}
	return s.Interrupt(kind)
}

// SetRegister stores the raw word of any reported register
func (s *Snapshot) SetRegister(kind RegisterKind, value uint32) {
	switch {
	case kind == RegStatus:
		s.Status = StatusWord(value)
	case kind == RegControl:
		s.Control = ControlWord(value)
	case kind.IsGroupRegister():
		s.Interrupts[kind-RegIntr] = value
	}
}

// ReportHeader is the first line of every report
const ReportHeader = "Status of GPIO("

// FormatFields renders decoded fields as {.name = value, ...} in the given
// order. Names missing from values render as 0.
func FormatFields(values FieldValues, order []string) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range order {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, _ := values.Get(name)
		sb.WriteString(".")
		sb.WriteString(name)
		sb.WriteString(" = ")
		sb.WriteString(utoa(v))
	}
	sb.WriteString("}")
	return sb.String()
}

// ReportLines renders a snapshot as report lines, without line terminators
func ReportLines(s *Snapshot) []string {
	lines := make([]string, 0, 1+int(numRegisterKinds))
	lines = append(lines, ReportHeader+utoa(uint32(s.Pin))+")")
	lines = append(lines, RegStatus.Label()+": "+hex32(uint32(s.Status))+"  "+s.Status.String())
	lines = append(lines, RegControl.Label()+": "+hex32(uint32(s.Control))+"  "+s.Control.String())
	for kind := RegIntr; kind < numRegisterKinds; kind++ {
		lines = append(lines, kind.Label()+": "+hex32(s.Interrupt(kind)))
	}
	return lines
}

// FormatReport renders a snapshot as a newline-terminated text block
func FormatReport(s *Snapshot) string {
	var sb strings.Builder
	for _, line := range ReportLines(s) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
