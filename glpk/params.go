package glpk

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ControlParams enumerates every tunable knob of the three solver
// strategies. Solve never mutates it.
type ControlParams struct {
	MsgLev int  `yaml:"msglev"` // message level, MsgOff..MsgDbg
	Dual   int  `yaml:"dual"`   // simplex variant: Primal, DualP or Dual
	Price  int  `yaml:"price"`  // pricing rule: PtStd or PtPSE
	ItLim  int  `yaml:"itlim"`  // simplex iteration limit
	OutFrq int  `yaml:"outfrq"` // output frequency, iterations
	Branch int  `yaml:"branch"` // branching technique, BrFFV..BrPCH
	BTrack int  `yaml:"btrack"` // backtracking technique, BtDFS..BtBPH
	Presol bool `yaml:"presol"` // enable the presolver
	RTest  int  `yaml:"rtest"`  // ratio test: RtStd or RtHar
	TmLim  int  `yaml:"tmlim"`  // time limit, milliseconds
	OutDly int  `yaml:"outdly"` // output delay, milliseconds

	TolBnd float64 `yaml:"tolbnd"` // primal feasibility tolerance
	TolDj  float64 `yaml:"toldj"`  // dual feasibility tolerance
	TolPiv float64 `yaml:"tolpiv"` // pivot tolerance
	ObjLL  float64 `yaml:"objll"`  // objective lower limit
	ObjUL  float64 `yaml:"objul"`  // objective upper limit
	TolInt float64 `yaml:"tolint"` // integer feasibility tolerance
	TolObj float64 `yaml:"tolobj"` // relative objective tolerance
}

// DefaultControlParams returns the defaults used by Octave's glpk front end.
func DefaultControlParams() ControlParams {
	return ControlParams{
		MsgLev: MsgErr,
		Dual:   Primal,
		Price:  PtPSE,
		ItLim:  math.MaxInt32,
		OutFrq: 200,
		Branch: BrDTH,
		BTrack: BtBLB,
		Presol: true,
		RTest:  RtHar,
		TmLim:  math.MaxInt32,
		OutDly: 0,
		TolBnd: 1e-7,
		TolDj:  1e-7,
		TolPiv: 1e-10,
		ObjLL:  -math.MaxFloat64,
		ObjUL:  math.MaxFloat64,
		TolInt: 1e-5,
		TolObj: 1e-7,
	}
}

// LoadControlParams decodes YAML over DefaultControlParams. Keys that are
// absent keep their default.
func LoadControlParams(r io.Reader) (ControlParams, error) {
	par := DefaultControlParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&par); err != nil && err != io.EOF {
		return ControlParams{}, errors.Wrap(err, "decode control parameters")
	}
	return par, nil
}

// LoadControlParamsFile reads control parameters from a YAML file.
func LoadControlParamsFile(path string) (ControlParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return ControlParams{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return LoadControlParams(f)
}

// smcp copies the simplex fields of par into a fresh record.
func (par *ControlParams) smcp() *Smcp {
	return &Smcp{
		MsgLev:   par.MsgLev,
		Meth:     par.Dual,
		Pricing:  par.Price,
		RTest:    par.RTest,
		TolBnd:   par.TolBnd,
		TolDj:    par.TolDj,
		TolPiv:   par.TolPiv,
		ObjLL:    par.ObjLL,
		ObjUL:    par.ObjUL,
		ItLim:    par.ItLim,
		TmLim:    par.TmLim,
		OutFrq:   par.OutFrq,
		OutDly:   par.OutDly,
		Presolve: par.Presol,
	}
}

// iocp copies the branch-and-bound fields of par into a fresh record.
func (par *ControlParams) iocp() *Iocp {
	return &Iocp{
		MsgLev:   par.MsgLev,
		BrTech:   par.Branch,
		BtTech:   par.BTrack,
		TolInt:   par.TolInt,
		TolObj:   par.TolObj,
		TmLim:    par.TmLim,
		OutFrq:   par.OutFrq,
		OutDly:   par.OutDly,
		Presolve: par.Presol,
	}
}

// iptcp copies the interior-point fields of par into a fresh record.
func (par *ControlParams) iptcp() *Iptcp {
	return &Iptcp{MsgLev: par.MsgLev}
}
