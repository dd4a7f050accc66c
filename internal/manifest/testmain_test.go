package manifest

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures the worker fan-out in Build never leaks goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
