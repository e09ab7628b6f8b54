package script

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/sharecart/pkg/cart"
	carterrors "github.com/provide-io/sharecart/pkg/cart/errors"
)

func newStore(t *testing.T) *cart.Store {
	t.Helper()
	s, err := cart.New(filepath.Join(t.TempDir(), "dat", "o_o.ini"))
	require.NoError(t, err)
	return s
}

func TestRunAppliesCommands(t *testing.T) {
	s := newStore(t)
	src := `
# new game plus
set PlayerName "Sir Robin"
set Switch3 true
set Misc0 4096
SET MapX 10
get PlayerName
get switch3
verify
`
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader(src), s, &out))
	assert.Equal(t, "PlayerName=Sir Robin\nswitch3=TRUE\n", out.String())

	r, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Sir Robin", r.PlayerName)
	assert.True(t, r.Switches[3])
	assert.Equal(t, uint16(4096), r.Misc[0])
	assert.Equal(t, uint16(10), r.MapX)
}

func TestRunReset(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetMapY(77))

	require.NoError(t, Run(strings.NewReader("reset\n"), s, &bytes.Buffer{}))
	y, err := s.GetMapY()
	require.NoError(t, err)
	assert.Zero(t, y)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	s := newStore(t)
	src := "set Misc1 5\n\nset MapX 4000\nset Misc2 6\n"

	err := Run(strings.NewReader(src), s, &bytes.Buffer{})
	require.Error(t, err)

	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "set MapX 4000", le.Text)
	assert.True(t, carterrors.IsRange(err))

	m1, err := s.GetMisc(1)
	require.NoError(t, err)
	assert.Equal(t, uint16(5), m1)
	m2, err := s.GetMisc(2)
	require.NoError(t, err)
	assert.Zero(t, m2)
}

func TestRunUsageErrors(t *testing.T) {
	tests := map[string]string{
		"unknown verb":     "jump MapX",
		"set missing args": "set MapX",
		"get extra args":   "get MapX MapY",
		"reset with args":  "reset now",
		"bad quoting":      `set PlayerName "Robin`,
	}
	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			err := Run(strings.NewReader(line), newStore(t), &bytes.Buffer{})
			var le *LineError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, 1, le.Line)
		})
	}
}
