package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"gpioinspect/core"
)

// firmwareOutput builds console output the way the firmware prints it
func firmwareOutput(snapshots ...*core.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("| Raspberry PICO - GPIO OUTPUT TEST |\r\n")
	for i, s := range snapshots {
		if i > 0 {
			sb.WriteString("step " + string(rune('0'+i)) + "\r\n")
		}
		for _, line := range core.ReportLines(s) {
			sb.WriteString(line + "\r\n")
		}
	}
	return sb.String()
}

func TestScannerSplitsReports(t *testing.T) {
	is := is.New(t)

	first := sampleSnapshot()
	second := sampleSnapshot()
	second.Control = 0x00000006

	var other []string
	sc := NewScanner(strings.NewReader(firmwareOutput(first, second)))
	sc.OnLine = func(line string) { other = append(other, line) }

	var reports []*Report
	for sc.Scan() {
		reports = append(reports, sc.Report())
	}
	is.NoErr(sc.Err())
	is.Equal(len(reports), 2)
	is.Equal(reports[0].Label, "| Raspberry PICO - GPIO OUTPUT TEST |")
	is.Equal(reports[1].Label, "step 1")
	is.Equal(len(reports[1].Lines), ReportLineCount)
	is.Equal(other, []string{"| Raspberry PICO - GPIO OUTPUT TEST |", "step 1"})

	// CR stripped
	is.True(!strings.HasSuffix(reports[0].Lines[0], "\r"))
}

func TestScannerTruncatedReport(t *testing.T) {
	is := is.New(t)

	out := firmwareOutput(sampleSnapshot())
	lines := strings.SplitAfter(out, "\n")
	truncated := strings.Join(lines[:6], "")

	sc := NewScanner(strings.NewReader(truncated))
	is.True(!sc.Scan())
	is.True(errors.Is(sc.Err(), ErrMalformedReport))
	is.True(!sc.Scan())
}

func TestReadTranscript(t *testing.T) {
	is := is.New(t)

	reports, err := ReadTranscript(strings.NewReader(firmwareOutput(sampleSnapshot(), sampleSnapshot())))
	is.NoErr(err)
	is.Equal(len(reports), 2)
	is.Equal(*reports[1].Snapshot, *sampleSnapshot())

	corrupt := strings.Replace(firmwareOutput(sampleSnapshot()), ".outover = 1", ".outover = 2", 1)
	_, err = ReadTranscript(strings.NewReader(corrupt))
	is.True(errors.Is(err, ErrReportMismatch))
}
