//go:build !tinygo

package core

import "testing"

func TestMMIOReaderUnavailable(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic from NewMMIOReader on regular Go")
		}
	}()
	NewMMIOReader()
}
