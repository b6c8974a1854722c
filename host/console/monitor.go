package console

import (
	"errors"
	"fmt"
	"io"

	"gpioinspect/host/config"
)

var ErrGoldenMismatch = errors.New("report differs from golden transcript")

// Monitor prints and checks reports read from a firmware console
type Monitor struct {
	cfg    *config.MonitorConfig
	out    io.Writer
	golden []*Report
}

// NewMonitor creates a Monitor writing to out
func NewMonitor(cfg *config.MonitorConfig, out io.Writer) *Monitor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Monitor{
		cfg: cfg,
		out: out,
	}
}

// LoadGolden reads the transcript that captured reports are compared to
func (m *Monitor) LoadGolden(r io.Reader) error {
	golden, err := ReadTranscript(r)
	if err != nil {
		return fmt.Errorf("failed to load golden transcript: %w", err)
	}
	m.golden = golden
	return nil
}

// Run reads console output until EOF or the configured report limit.
// Every report is verified against its own raw values and, when a golden
// transcript is loaded, against the report at the same position in it.
func (m *Monitor) Run(r io.Reader) ([]*Report, error) {
	var (
		reports []*Report
		errs    []error
	)

	sc := NewScanner(r)
	if m.cfg.Echo {
		sc.OnLine = func(line string) {
			fmt.Fprintln(m.out, line)
		}
	}

	for sc.Scan() {
		report := sc.Report()
		index := len(reports)
		reports = append(reports, report)

		snapshot, err := Verify(report.Lines)
		report.Snapshot = snapshot
		if err != nil {
			errs = append(errs, fmt.Errorf("report %d: %w", index, err))
		}
		if err := m.compareGolden(index, report); err != nil {
			errs = append(errs, err)
		}

		if snapshot == nil || m.cfg.WantsPin(uint32(snapshot.Pin)) {
			m.print(report)
		}

		if m.cfg.MaxReports > 0 && len(reports) >= m.cfg.MaxReports {
			break
		}
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}

	if m.golden != nil && len(reports) < len(m.golden) && (m.cfg.MaxReports == 0 || len(reports) < m.cfg.MaxReports) {
		errs = append(errs, fmt.Errorf("%w: captured %d reports, golden has %d", ErrGoldenMismatch, len(reports), len(m.golden)))
	}

	return reports, errors.Join(errs...)
}

func (m *Monitor) compareGolden(index int, report *Report) error {
	if m.golden == nil {
		return nil
	}
	if index >= len(m.golden) {
		return fmt.Errorf("%w: report %d not in golden transcript", ErrGoldenMismatch, index)
	}

	want := m.golden[index]
	if report.Label != want.Label {
		return fmt.Errorf("%w: report %d label %q, expected %q", ErrGoldenMismatch, index, report.Label, want.Label)
	}
	for i := range want.Lines {
		if report.Lines[i] != want.Lines[i] {
			return fmt.Errorf("%w: report %d line %d: got %q, expected %q", ErrGoldenMismatch, index, i, report.Lines[i], want.Lines[i])
		}
	}
	return nil
}

func (m *Monitor) print(report *Report) {
	if report.Label != "" && !m.cfg.Echo {
		fmt.Fprintln(m.out, report.Label)
	}
	for _, line := range report.Lines {
		fmt.Fprintln(m.out, line)
	}
	if m.cfg.Explain && report.Snapshot != nil {
		for _, line := range Explain(report.Snapshot) {
			fmt.Fprintln(m.out, "    # "+line)
		}
	}
}
