package cli_test

import (
	"testing"

	"qit.dev/qit/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m, nil)
}

// getQitBinary returns the path to the pre-built qit binary.
func getQitBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelpers.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelpers.GetBinaryError(); err != nil {
			t.Fatalf("failed to build qit binary: %v", err)
		}
		t.Fatal("qit binary not built")
	}
	return binaryPath
}
