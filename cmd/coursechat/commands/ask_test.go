// ABOUTME: Tests for the ask command structure
// ABOUTME: Verifies args validation

package commands

import (
	"bytes"
	"testing"
)

func TestNewAskCmd(t *testing.T) {
	cmd := NewAskCmd()

	if cmd.Use != "ask <question>" {
		t.Errorf("Use = %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	cmd := NewAskCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error without a question argument")
	}
}
