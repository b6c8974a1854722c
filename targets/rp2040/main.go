//go:build rp2040

package main

import (
	"gpioinspect/core"
	"time"
)

func main() {
	// Initialize USB CDC immediately
	InitUSB()

	cfg := GetInspectConfig()

	// Give the host a chance to open the console before the first report
	WaitForConsole(cfg.ConsoleWaitMicros)

	core.SetDebugWriter(ConsolePrintln)
	core.SetDebugEnabled(cfg.Debug)

	// Register hardware access for the inspector and the sequence
	core.SetRegisterReader(core.NewMMIOReader())
	core.SetGPIODriver(NewRPGPIODriver())

	printBanner()

	steps := core.DefaultSequence()
	if cfg.RoutePIO {
		steps = append(steps, core.FunctionStep("GPIO set pio0", core.FuncPIO0))
	}

	err := core.RunSequence(core.NewDefaultInspector(), core.MustGPIO(), cfg.Pin, steps, ConsolePrintln)
	if err != nil {
		ConsolePrintln("error: " + err.Error())
	}

	// Nothing left to do; keep USB alive so the host can read the output
	for {
		time.Sleep(time.Second)
	}
}

func printBanner() {
	ConsolePrintln("/----------------------------------\\")
	ConsolePrintln("| Raspberry PICO - GPIO OUTPUT TEST |")
	ConsolePrintln("\\-----------------------------------/")
}
