package core

import (
	"errors"
	"testing"
)

func TestLayoutCoverage(t *testing.T) {
	layouts := map[string]Layout{
		"status":  StatusLayout,
		"control": ControlLayout,
	}

	for name, layout := range layouts {
		var covered uint32
		for _, f := range layout {
			if covered&f.Mask() != 0 {
				t.Errorf("%s: field %s overlaps an earlier field", name, f.Name)
			}
			covered |= f.Mask()
		}
		if covered != 0xFFFFFFFF {
			t.Errorf("%s: expected coverage 0xFFFFFFFF, got 0x%08X", name, covered)
		}
		if err := layout.Validate(); err != nil {
			t.Errorf("%s: Validate failed: %v", name, err)
		}
	}
}

func TestLayoutOrdered(t *testing.T) {
	for _, layout := range []Layout{StatusLayout, ControlLayout} {
		next := uint8(0)
		for _, f := range layout {
			if f.Offset != next {
				t.Errorf("Field %s: expected offset %d, got %d", f.Name, next, f.Offset)
			}
			next = f.Offset + f.Width
		}
	}
}

func TestLayoutNamedFields(t *testing.T) {
	testCases := []struct {
		layout Layout
		name   string
		offset uint8
		width  uint8
	}{
		{StatusLayout, FieldOutFromPeri, 8, 1},
		{StatusLayout, FieldOutToPad, 9, 1},
		{StatusLayout, FieldOEFromPeri, 12, 1},
		{StatusLayout, FieldOEToPad, 13, 1},
		{StatusLayout, FieldInFromPad, 17, 1},
		{StatusLayout, FieldInToPeri, 19, 1},
		{StatusLayout, FieldIRQFromPad, 24, 1},
		{StatusLayout, FieldIRQToProc, 26, 1},
		{ControlLayout, FieldFuncSel, 0, 5},
		{ControlLayout, FieldOutOver, 8, 2},
		{ControlLayout, FieldOEOver, 12, 2},
		{ControlLayout, FieldInOver, 16, 2},
		{ControlLayout, FieldIRQOver, 28, 2},
	}

	for _, tc := range testCases {
		f, ok := tc.layout.Field(tc.name)
		if !ok {
			t.Errorf("Field %s not found", tc.name)
			continue
		}
		if f.Reserved {
			t.Errorf("Field %s should not be reserved", tc.name)
		}
		if f.Offset != tc.offset || f.Width != tc.width {
			t.Errorf("Field %s: expected offset %d width %d, got offset %d width %d",
				tc.name, tc.offset, tc.width, f.Offset, f.Width)
		}
	}

	if _, ok := StatusLayout.Field("funcsel"); ok {
		t.Error("Status layout should not have a funcsel field")
	}
}

func TestLayoutValidateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		layout Layout
		err    error
	}{
		{
			name: "gap",
			layout: Layout{
				{Name: "a", Offset: 0, Width: 8},
				{Name: "b", Offset: 9, Width: 23},
			},
			err: ErrLayoutGap,
		},
		{
			name: "overlap",
			layout: Layout{
				{Name: "a", Offset: 0, Width: 16},
				{Name: "b", Offset: 15, Width: 17},
			},
			err: ErrLayoutOverlap,
		},
		{
			name: "too wide",
			layout: Layout{
				{Name: "a", Offset: 0, Width: 16},
				{Name: "b", Offset: 16, Width: 17},
			},
			err: ErrLayoutWidth,
		},
		{
			name:   "empty field",
			layout: Layout{{Name: "a", Offset: 0, Width: 0}},
			err:    ErrLayoutWidth,
		},
		{
			name:   "full word",
			layout: Layout{{Name: "a", Offset: 0, Width: 32}},
			err:    nil,
		},
	}

	for _, tc := range testCases {
		err := tc.layout.Validate()
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}

func TestReportOrderNamesExist(t *testing.T) {
	for _, name := range statusReportOrder {
		if _, ok := StatusLayout.Field(name); !ok {
			t.Errorf("Status report field %s missing from layout", name)
		}
	}
	for _, name := range controlReportOrder {
		if _, ok := ControlLayout.Field(name); !ok {
			t.Errorf("Control report field %s missing from layout", name)
		}
	}
}
