package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Scanner splits a console line stream into reports.
// Lines outside reports are handed to OnLine, if set.
type Scanner struct {
	OnLine func(line string)

	lines  *bufio.Scanner
	prev   string
	report *Report
	err    error
}

// NewScanner reads console output from r
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		lines: bufio.NewScanner(r),
	}
}

// Scan advances to the next complete report. It returns false at the end of
// the input or on error; a report cut short by the end of input is an error.
func (s *Scanner) Scan() bool {
	s.report = nil
	if s.err != nil {
		return false
	}

	for s.next() {
		line := s.text()
		if !IsReportHeader(line) {
			if s.OnLine != nil {
				s.OnLine(line)
			}
			s.prev = line
			continue
		}

		report := &Report{
			Label: s.prev,
			Lines: append(make([]string, 0, ReportLineCount), line),
		}
		for len(report.Lines) < ReportLineCount {
			if !s.next() {
				if s.err == nil {
					s.err = fmt.Errorf("%w: truncated after %d lines", ErrMalformedReport, len(report.Lines))
				}
				return false
			}
			report.Lines = append(report.Lines, s.text())
		}

		s.prev = ""
		s.report = report
		return true
	}
	return false
}

// Report returns the report found by the last successful Scan
func (s *Scanner) Report() *Report {
	return s.report
}

// Err returns the first error met while scanning
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) next() bool {
	if s.lines.Scan() {
		return true
	}
	if err := s.lines.Err(); err != nil && s.err == nil {
		s.err = err
	}
	return false
}

// text returns the current line without the CR of a CRLF terminator
func (s *Scanner) text() string {
	return strings.TrimSuffix(s.lines.Text(), "\r")
}

// ReadTranscript scans and verifies every report in r
func ReadTranscript(r io.Reader) ([]*Report, error) {
	var reports []*Report

	sc := NewScanner(r)
	for sc.Scan() {
		report := sc.Report()
		snapshot, err := Verify(report.Lines)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", len(reports), err)
		}
		report.Snapshot = snapshot
		reports = append(reports, report)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
