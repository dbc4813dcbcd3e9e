package catalogdiff

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDiffCommand_RequiresBothDSNs(t *testing.T) {
	c := qt.New(t)

	// Neither flag has been registered/bound to viper in this test process,
	// so both read back as the empty string and the command must refuse to
	// proceed rather than dial an empty DSN.
	err := diffCommand(rootCmd, nil)
	c.Assert(err, qt.IsNotNil)
	c.Assert(err.Error(), qt.Contains, masterDSNFlag)
	c.Assert(err.Error(), qt.Contains, branchDSNFlag)
}

func TestDiffFlags_Registered(t *testing.T) {
	c := qt.New(t)

	c.Assert(diffFlags, qt.HasLen, 3)
	_, ok := diffFlags[ignoreSchemasFlag]
	c.Assert(ok, qt.IsTrue)
}
