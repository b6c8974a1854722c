package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"gpioinspect/core"
	"gpioinspect/host/config"
	"gpioinspect/host/console"
	"gpioinspect/host/serial"
)

var cli struct {
	Monitor monitorCmd `cmd:"" default:"1" help:"Capture and check GPIO reports from the firmware console"`
	Decode  decodeCmd  `cmd:"" help:"Render a report from raw register values"`
	Addr    addrCmd    `cmd:"" help:"Print the register addresses reported for a pin"`
	Verify  verifyCmd  `cmd:"" help:"Check every report in a saved console transcript"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("gpioinspect-host"),
		kong.Description("Host side of the RP2040 GPIO register inspector"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type monitorCmd struct {
	Config     string   `name:"config" type:"existingfile" help:"JSON monitor configuration"`
	Device     string   `name:"device" help:"Serial device path (overrides config)"`
	Baud       int      `name:"baud" help:"Baud rate (overrides config)"`
	Golden     string   `name:"golden" type:"existingfile" help:"Transcript the reports must match"`
	Pins       []uint32 `name:"pin" help:"Only print reports for these pins"`
	MaxReports int      `name:"max-reports" help:"Stop after this many reports"`
	Explain    bool     `name:"explain" help:"Describe decoded fields"`
	Echo       bool     `name:"echo" help:"Print every console line"`
}

func (m *monitorCmd) Run() error {
	cfg := config.DefaultConfig()
	if m.Config != "" {
		loaded, err := config.LoadConfigFile(m.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	m.apply(cfg)

	mon := console.NewMonitor(cfg, os.Stdout)
	if cfg.Golden != "" {
		f, err := os.Open(cfg.Golden)
		if err != nil {
			return fmt.Errorf("failed to open golden transcript: %w", err)
		}
		err = mon.LoadGolden(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer port.Close()

	// Drop anything printed before we attached
	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flush failed: %v\n", err)
	}

	fmt.Fprintf(os.Stderr, "Listening on %s...\n", cfg.Device)
	reports, err := mon.Run(port)
	fmt.Fprintf(os.Stderr, "Captured %d reports\n", len(reports))
	return err
}

// apply overrides config values with flags that were set
func (m *monitorCmd) apply(cfg *config.MonitorConfig) {
	if m.Device != "" {
		cfg.Device = m.Device
	}
	if m.Baud != 0 {
		cfg.Baud = m.Baud
	}
	if m.Golden != "" {
		cfg.Golden = m.Golden
	}
	if len(m.Pins) > 0 {
		cfg.Pins = m.Pins
	}
	if m.MaxReports != 0 {
		cfg.MaxReports = m.MaxReports
	}
	cfg.Explain = cfg.Explain || m.Explain
	cfg.Echo = cfg.Echo || m.Echo
}

type decodeCmd struct {
	Pin     uint32   `name:"pin" default:"0" help:"Pin the values were read for"`
	Status  string   `name:"status" default:"0" help:"GPIOx_STATUS value (hex with 0x, or decimal)"`
	Control string   `name:"control" default:"0x1f" help:"GPIOx_CTRL value (hex with 0x, or decimal)"`
	Intr    []string `name:"intr" help:"Interrupt register values in report order"`
	Explain bool     `name:"explain" help:"Describe decoded fields"`
}

func (d *decodeCmd) Run() error {
	s := &core.Snapshot{Pin: core.GPIOPin(d.Pin)}

	status, err := parseWord(d.Status)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	control, err := parseWord(d.Control)
	if err != nil {
		return fmt.Errorf("control: %w", err)
	}
	s.Status = core.StatusWord(status)
	s.Control = core.ControlWord(control)

	if len(d.Intr) > core.NumInterruptRegisters {
		return fmt.Errorf("at most %d interrupt values", core.NumInterruptRegisters)
	}
	for i, v := range d.Intr {
		word, err := parseWord(v)
		if err != nil {
			return fmt.Errorf("intr %d: %w", i, err)
		}
		s.Interrupts[i] = word
	}

	// Run the values through the same read path the firmware uses
	reader := core.NewMemoryReader()
	if err := reader.LoadSnapshot(core.DefaultRegisterMap, s); err != nil {
		return err
	}
	report, err := core.NewInspector(core.DefaultRegisterMap, reader).Dump(s.Pin)
	if err != nil {
		return err
	}
	fmt.Print(report)

	if d.Explain {
		for _, line := range console.Explain(s) {
			fmt.Println("    # " + line)
		}
	}
	return nil
}

type addrCmd struct {
	Pin uint32 `arg:"" help:"GPIO pin number"`
}

func (a *addrCmd) Run() error {
	pin := core.GPIOPin(a.Pin)
	for i := 0; i < core.NumRegisterKinds; i++ {
		kind := core.RegisterKind(i)
		addr, err := core.DefaultRegisterMap.AddressOf(kind, pin)
		if err != nil {
			return err
		}
		fmt.Printf("%s: 0x%08x\n", kind.Label(), uint32(addr))
	}
	return nil
}

type verifyCmd struct {
	Transcript string `arg:"" type:"existingfile" help:"Saved console output"`
}

func (v *verifyCmd) Run() error {
	f, err := os.Open(v.Transcript)
	if err != nil {
		return err
	}
	defer f.Close()

	reports, err := console.ReadTranscript(f)
	if err != nil {
		return err
	}
	for i, r := range reports {
		fmt.Printf("report %d: GPIO(%d) ok\n", i, r.Snapshot.Pin)
	}
	return nil
}

// parseWord accepts 0x-prefixed hex or decimal 32-bit values
func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
