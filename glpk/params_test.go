package glpk

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultControlParams(t *testing.T) {
	par := DefaultControlParams()

	assert.Equal(t, MsgErr, par.MsgLev)
	assert.Equal(t, Primal, par.Dual)
	assert.Equal(t, PtPSE, par.Price)
	assert.Equal(t, math.MaxInt32, par.ItLim)
	assert.Equal(t, 200, par.OutFrq)
	assert.Equal(t, BrDTH, par.Branch)
	assert.Equal(t, BtBLB, par.BTrack)
	assert.True(t, par.Presol)
	assert.Equal(t, RtHar, par.RTest)
	assert.Equal(t, math.MaxInt32, par.TmLim)
	assert.Equal(t, 0, par.OutDly)
	assert.Equal(t, 1e-7, par.TolBnd)
	assert.Equal(t, 1e-7, par.TolDj)
	assert.Equal(t, 1e-10, par.TolPiv)
	assert.Equal(t, -math.MaxFloat64, par.ObjLL)
	assert.Equal(t, math.MaxFloat64, par.ObjUL)
	assert.Equal(t, 1e-5, par.TolInt)
	assert.Equal(t, 1e-7, par.TolObj)
}

func TestLoadControlParams(t *testing.T) {
	par, err := LoadControlParams(strings.NewReader(`
msglev: 0
presol: false
branch: 1
btrack: 2
tolint: 1.0e-6
`))
	require.NoError(t, err)

	want := DefaultControlParams()
	want.MsgLev = MsgOff
	want.Presol = false
	want.Branch = BrFFV
	want.BTrack = BtBFS
	want.TolInt = 1e-6
	assert.Equal(t, want, par)
}

func TestLoadControlParamsEmpty(t *testing.T) {
	par, err := LoadControlParams(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultControlParams(), par)
}

func TestLoadControlParamsUnknownField(t *testing.T) {
	_, err := LoadControlParams(strings.NewReader("lpsolver: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode control parameters")
}

func TestLoadControlParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("itlim: 50\ntmlim: 1000\n"), 0o644))

	par, err := LoadControlParamsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, par.ItLim)
	assert.Equal(t, 1000, par.TmLim)

	_, err = LoadControlParamsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
