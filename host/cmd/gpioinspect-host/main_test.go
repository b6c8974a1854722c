package main

import (
	"testing"

	"github.com/matryer/is"

	"gpioinspect/host/config"
)

func TestParseWord(t *testing.T) {
	is := is.New(t)

	v, err := parseWord("0x0000001f")
	is.NoErr(err)
	is.Equal(v, uint32(31))

	v, err = parseWord(" 512 ")
	is.NoErr(err)
	is.Equal(v, uint32(512))

	_, err = parseWord("0x100000000")
	is.True(err != nil)

	_, err = parseWord("status")
	is.True(err != nil)
}

func TestMonitorFlagsOverrideConfig(t *testing.T) {
	is := is.New(t)

	cfg := config.DefaultConfig()
	cfg.Explain = true

	m := monitorCmd{Device: "/dev/ttyACM1", Pins: []uint32{3}, MaxReports: 4}
	m.apply(cfg)

	is.Equal(cfg.Device, "/dev/ttyACM1")
	is.Equal(cfg.Baud, 115200)
	is.Equal(cfg.Pins, []uint32{3})
	is.Equal(cfg.MaxReports, 4)
	is.True(cfg.Explain)
	is.True(!cfg.Echo)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	is := is.New(t)

	d := decodeCmd{Pin: 30, Status: "0", Control: "0x1f"}
	is.True(d.Run() != nil)

	d = decodeCmd{Status: "zz", Control: "0"}
	is.True(d.Run() != nil)

	d = decodeCmd{Status: "0", Control: "0", Intr: make([]string, 12)}
	is.True(d.Run() != nil)
}

func TestAddrRejectsBadPin(t *testing.T) {
	is := is.New(t)

	is.True((&addrCmd{Pin: 30}).Run() != nil)
}
