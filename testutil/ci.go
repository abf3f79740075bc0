package testutil

import (
	"os"
	"testing"
)

const envUseCI = "HEXSUM_CI"

// SkipCI skips long-running tests unless HEXSUM_CI is set.
func SkipCI(t *testing.T) {
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip HEXSUM CI")
	}
}
