package workload

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

// localsRoot is the first decoding pass: it pulls out the locals blocks so
// their values can be placed in the evaluation context of the second pass.
type localsRoot struct {
	Locals []*localsBlock `hcl:"locals,block"`
	Remain hcl.Body       `hcl:",remain"`
}

type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type workloadRoot struct {
	Quantum   hcl.Expression  `hcl:"quantum,optional"`
	Processes []*processBlock `hcl:"process,block"`
}

type processBlock struct {
	Arrival  int64 `hcl:"arrival"`
	Burst    int64 `hcl:"burst"`
	Priority int64 `hcl:"priority,optional"`
}

// ParseHCL decodes a workload written in HCL:
//
//	quantum = 2
//	locals {
//	  base = 1
//	}
//	process {
//	  arrival = 0
//	  burst   = 5
//	}
//	process {
//	  arrival  = local.base
//	  burst    = 3
//	  priority = 1
//	}
//
// Process ids follow block order. Quantum is 0 when the file does not set it.
func ParseHCL(src []byte, filename string) ([]scheduler.Process, int64, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, 0, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidWorkload, filename, diags)
	}

	var pre localsRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &pre); diags.HasErrors() {
		return nil, 0, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidWorkload, filename, diags)
	}

	evalCtx, err := localsContext(pre.Locals)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrInvalidWorkload, filename, err)
	}

	var root workloadRoot
	if diags := gohcl.DecodeBody(pre.Remain, evalCtx, &root); diags.HasErrors() {
		return nil, 0, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidWorkload, filename, diags)
	}

	quantum, err := decodeQuantum(root.Quantum, evalCtx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrInvalidWorkload, filename, err)
	}

	w := scheduler.NewWorkload()
	for i, b := range root.Processes {
		if _, err := w.Add(b.Arrival, b.Burst, b.Priority); err != nil {
			return nil, 0, fmt.Errorf("%s: process block %d: %w", filename, i+1, err)
		}
	}
	return w.Processes(), quantum, nil
}

// localsContext evaluates every locals attribute and exposes them as
// local.<name>. Locals may not refer to each other.
func localsContext(blocks []*localsBlock) (*hcl.EvalContext, error) {
	values := make(map[string]cty.Value)
	for _, b := range blocks {
		attrs, diags := b.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			if _, dup := values[name]; dup {
				return nil, fmt.Errorf("local %q is defined more than once", name)
			}
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			values[name] = val
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.ObjectVal(values)},
	}, nil
}

func decodeQuantum(expr hcl.Expression, evalCtx *hcl.EvalContext) (int64, error) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, nil
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("quantum: cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	var quantum int64
	if err := gocty.FromCtyValue(num, &quantum); err != nil {
		return 0, fmt.Errorf("quantum: %w", err)
	}
	if quantum <= 0 {
		return 0, fmt.Errorf("quantum must be > 0, got %d", quantum)
	}
	return quantum, nil
}
