package log

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	defer level.SetLevel(zap.InfoLevel)

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug): %v", err)
	}
	if !level.Enabled(zap.DebugLevel) {
		t.Fatal("debug level not enabled")
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
