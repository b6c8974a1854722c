// Package console reassembles and checks the GPIO reports printed by the
// firmware on its serial console.
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gpioinspect/core"
)

var (
	ErrMalformedReport = errors.New("malformed GPIO report")
	ErrReportMismatch  = errors.New("report fields disagree with raw value")
)

// ReportLineCount is the number of lines in one report
const ReportLineCount = 1 + core.NumRegisterKinds

// Report is one captured register dump
type Report struct {
	Label    string   // Console line printed just before the report, if any
	Lines    []string // Report lines without terminators
	Snapshot *core.Snapshot
}

// ParseReport reads the raw register values back out of report lines
func ParseReport(lines []string) (*core.Snapshot, error) {
	if len(lines) != ReportLineCount {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", ErrMalformedReport, ReportLineCount, len(lines))
	}

	pin, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	s := &core.Snapshot{Pin: pin}
	for i := 0; i < core.NumRegisterKinds; i++ {
		kind := core.RegisterKind(i)
		value, err := parseRegisterLine(lines[1+i], kind)
		if err != nil {
			return nil, err
		}
		s.SetRegister(kind, value)
	}
	return s, nil
}

// Verify re-renders the parsed raw values and checks that every line matches
// what the firmware printed
func Verify(lines []string) (*core.Snapshot, error) {
	s, err := ParseReport(lines)
	if err != nil {
		return nil, err
	}

	for i, want := range core.ReportLines(s) {
		if lines[i] != want {
			return s, fmt.Errorf("%w: line %d: got %q, expected %q", ErrReportMismatch, i, lines[i], want)
		}
	}
	return s, nil
}

func parseHeader(line string) (core.GPIOPin, error) {
	if !strings.HasPrefix(line, core.ReportHeader) || !strings.HasSuffix(line, ")") {
		return 0, fmt.Errorf("%w: bad header %q", ErrMalformedReport, line)
	}

	digits := strings.TrimSuffix(strings.TrimPrefix(line, core.ReportHeader), ")")
	pin, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad pin in %q", ErrMalformedReport, line)
	}
	return core.GPIOPin(pin), nil
}

func parseRegisterLine(line string, kind core.RegisterKind) (uint32, error) {
	prefix := kind.Label() + ": 0x"
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("%w: expected %q line, got %q", ErrMalformedReport, strings.TrimSpace(kind.Label()), line)
	}

	rest := strings.TrimPrefix(line, prefix)
	if len(rest) < 8 {
		return 0, fmt.Errorf("%w: short value in %q", ErrMalformedReport, line)
	}

	value, err := strconv.ParseUint(rest[:8], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad value in %q", ErrMalformedReport, line)
	}
	return uint32(value), nil
}

// IsReportHeader reports whether a console line starts a report
func IsReportHeader(line string) bool {
	return strings.HasPrefix(line, core.ReportHeader)
}
