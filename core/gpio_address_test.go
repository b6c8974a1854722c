package core

import (
	"errors"
	"testing"
)

func TestAddressOfKnownRegisters(t *testing.T) {
	testCases := []struct {
		kind     RegisterKind
		pin      GPIOPin
		expected RegisterAddress
	}{
		{RegStatus, 0, 0x40014000},
		{RegControl, 0, 0x40014004},
		{RegStatus, 7, 0x40014038},
		{RegControl, 7, 0x4001403c},
		{RegStatus, 29, 0x400140e8},
		{RegControl, 29, 0x400140ec},
		{RegIntr, 7, 0x400140f0},
		{RegIntr, 8, 0x400140f4},
		{RegProc0Inte, 0, 0x40014100},
		{RegProc0Intf, 0, 0x40014110},
		{RegProc0Ints, 0, 0x40014120},
		{RegProc1Inte, 16, 0x40014138},
		{RegProc1Intf, 0, 0x40014140},
		{RegProc1Ints, 0, 0x40014150},
		{RegDormantWakeInte, 24, 0x4001416c},
		{RegDormantWakeIntf, 29, 0x4001417c},
		{RegDormantWakeInts, 0, 0x40014180},
	}

	for _, tc := range testCases {
		addr, err := DefaultRegisterMap.AddressOf(tc.kind, tc.pin)
		if err != nil {
			t.Errorf("%s pin %d: unexpected error %v", tc.kind.Label(), tc.pin, err)
			continue
		}
		if addr != tc.expected {
			t.Errorf("%s pin %d: expected 0x%08x, got 0x%08x", tc.kind.Label(), tc.pin, tc.expected, addr)
		}
	}
}

func TestAddressDeterminism(t *testing.T) {
	for pin := GPIOPin(0); pin < NumGPIOPins; pin++ {
		for kind := RegStatus; kind < numRegisterKinds; kind++ {
			a1, err1 := DefaultRegisterMap.AddressOf(kind, pin)
			a2, err2 := DefaultRegisterMap.AddressOf(kind, pin)
			if a1 != a2 || err1 != nil || err2 != nil {
				t.Errorf("%s pin %d: got 0x%08x/%v then 0x%08x/%v", kind.Label(), pin, a1, err1, a2, err2)
			}
		}
	}
}

func TestAddressControlFollowsStatus(t *testing.T) {
	for pin := GPIOPin(0); pin < NumGPIOPins; pin++ {
		status, _ := DefaultRegisterMap.AddressOf(RegStatus, pin)
		control, _ := DefaultRegisterMap.AddressOf(RegControl, pin)
		if control-status != gpioCtrlOffset {
			t.Errorf("Pin %d: expected control-status = 4, got %d", pin, control-status)
		}
	}
}

func TestAddressGroupBanking(t *testing.T) {
	for kind := RegIntr; kind < numRegisterKinds; kind++ {
		base, _ := DefaultRegisterMap.AddressOf(kind, 0)
		for pin := GPIOPin(1); pin < 8; pin++ {
			addr, _ := DefaultRegisterMap.AddressOf(kind, pin)
			if addr != base {
				t.Errorf("%s: pin %d expected 0x%08x, got 0x%08x", kind.Label(), pin, base, addr)
			}
		}

		next, _ := DefaultRegisterMap.AddressOf(kind, 8)
		if next-base != gpioGroupStride {
			t.Errorf("%s: pin 8 expected one group stride past pin 0, got %d", kind.Label(), next-base)
		}
	}
}

func TestAddressCustomBase(t *testing.T) {
	regs := RegisterMap{Base: 0x1000, NumPins: 16}

	addr, err := regs.AddressOf(RegControl, 3)
	if err != nil || addr != 0x101c {
		t.Errorf("Expected 0x101c, got 0x%x (%v)", addr, err)
	}
	if _, err := regs.AddressOf(RegStatus, 16); !errors.Is(err, ErrInvalidPin) {
		t.Errorf("Expected ErrInvalidPin for pin 16, got %v", err)
	}
}

func TestAddressInvalid(t *testing.T) {
	if _, err := DefaultRegisterMap.AddressOf(RegStatus, NumGPIOPins); !errors.Is(err, ErrInvalidPin) {
		t.Errorf("Expected ErrInvalidPin, got %v", err)
	}
	if _, err := DefaultRegisterMap.AddressOf(RegIntr, 1000); !errors.Is(err, ErrInvalidPin) {
		t.Errorf("Expected ErrInvalidPin, got %v", err)
	}
	if _, err := DefaultRegisterMap.AddressOf(numRegisterKinds, 0); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("Expected ErrUnknownRegister, got %v", err)
	}
	if numRegisterKinds.Label() != "unknown" {
		t.Errorf("Expected unknown label, got %q", numRegisterKinds.Label())
	}
}
