package console

import (
	"fmt"
	"strings"

	"gpioinspect/core"
)

// Explain describes the decoded fields of a snapshot in words
func Explain(s *core.Snapshot) []string {
	c := s.Control
	st := s.Status

	lines := []string{
		fmt.Sprintf("funcsel %d (%s)", uint8(c.FuncSel()), c.FuncSel()),
		fmt.Sprintf("overrides: out=%s oe=%s in=%s irq=%s", c.OutOver(), c.OEOver(), c.InOver(), c.IRQOver()),
		fmt.Sprintf("pad: out=%s oe=%s in=%s", level(st.OutToPad()), level(st.OEToPad()), level(st.InFromPad())),
	}

	for kind := core.RegIntr; int(kind) < core.NumRegisterKinds; kind++ {
		events := core.IRQEvents(s.Interrupt(kind), s.Pin)
		if events == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: gpio%d %s", strings.TrimSpace(kind.Label()), s.Pin, eventNames(events)))
	}
	return lines
}

func level(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func eventNames(events uint8) string {
	var names []string
	if events&core.IRQLevelLow != 0 {
		names = append(names, "level-low")
	}
	if events&core.IRQLevelHigh != 0 {
		names = append(names, "level-high")
	}
	if events&core.IRQEdgeLow != 0 {
		names = append(names, "edge-low")
	}
	if events&core.IRQEdgeHigh != 0 {
		names = append(names, "edge-high")
	}
	return strings.Join(names, ",")
}
