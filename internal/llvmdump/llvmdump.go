// Package llvmdump renders annotated IR as LLVM textual IR for the
// `mcc llvm` developer view named in SPEC_FULL.md's domain stack: a
// second, tool-friendly look at the same program for anyone who wants to
// pipe it into opt/llc, never a second code-generation path. The real
// backend is internal/codegen/x86; this package trails behind it and may
// not model every instruction the x86 emitter handles.
package llvmdump

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	mccir "mcc/internal/ir"
)

// Dump translates head, one function at a time, into an LLVM module and
// returns its textual IR.
func Dump(head *mccir.Row) string {
	m := ir.NewModule()
	for r := head; r != nil; {
		if r.Instr == mccir.FuncLabel {
			r = translateFunc(m, r)
			continue
		}
		r = r.Next
	}
	return m.String()
}

func llType(t mccir.RowType) types.Type {
	switch t {
	case mccir.FloatT:
		return types.Double
	case mccir.BoolT:
		return types.I1
	case mccir.StringT:
		return types.NewPointer(types.I8)
	default:
		return types.I32
	}
}

// paramTypes reads the run of POP rows immediately following a FUNC_LABEL
// to recover each parameter's type, without needing the AST's own param
// list in scope here.
func paramTypes(funcLabel *mccir.Row) []*ir.Param {
	var params []*ir.Param
	r := funcLabel.Next
	i := 0
	for r != nil && r.Instr == mccir.Pop {
		pop := r
		r = r.Next
		if r == nil || r.Instr != mccir.Assign || r.Arg2.Kind != mccir.RowRef || r.Arg2.Row != pop {
			break
		}
		params = append(params, ir.NewParam(fmt.Sprintf("arg%d", i), llType(pop.Type)))
		i++
		r = r.Next
	}
	return params
}

// translateFunc builds one LLVM function from the FUNC_LABEL row funcLabel
// through the row immediately before the next FUNC_LABEL (or EOF), and
// returns the row generation should resume from.
func translateFunc(m *ir.Module, funcLabel *mccir.Row) *mccir.Row {
	name := funcLabel.Arg1.Name
	params := paramTypes(funcLabel)
	fn := m.NewFunc(name, types.I32, params...)
	block := fn.NewBlock("entry")

	vals := map[string]value.Value{}
	rowVals := map[*mccir.Row]value.Value{}
	for i, p := range fn.Params {
		vals[fmt.Sprintf("$arg%d", i)] = p
	}

	resolve := func(a *mccir.Arg) value.Value {
		return resolveArg(a, vals, rowVals)
	}

	r := funcLabel.Next
	argIdx := 0
	for r != nil && r.Instr != mccir.FuncLabel {
		switch r.Instr {
		case mccir.Pop:
			rowVals[r] = vals[fmt.Sprintf("$arg%d", argIdx)]
			argIdx++
		case mccir.Assign:
			vals[r.Arg1.Name] = resolve(r.Arg2)
		case mccir.Plus:
			rowVals[r] = block.NewAdd(resolve(r.Arg1), resolve(r.Arg2))
		case mccir.Minus:
			rowVals[r] = block.NewSub(resolve(r.Arg1), resolve(r.Arg2))
		case mccir.Multiply:
			rowVals[r] = block.NewMul(resolve(r.Arg1), resolve(r.Arg2))
		case mccir.Divide:
			rowVals[r] = block.NewSDiv(resolve(r.Arg1), resolve(r.Arg2))
		case mccir.Equals:
			rowVals[r] = block.NewICmp(intPredFor(r.Instr), resolve(r.Arg1), resolve(r.Arg2))
		case mccir.NotEquals, mccir.Smaller, mccir.Greater, mccir.SmallerEq, mccir.GreaterEq:
			rowVals[r] = block.NewICmp(intPredFor(r.Instr), resolve(r.Arg1), resolve(r.Arg2))
		case mccir.Return:
			if r.Arg1 != nil {
				block.NewRet(resolve(r.Arg1))
			} else {
				block.NewRet(nil)
			}
		}
		r = r.Next
	}
	if block.Term == nil {
		block.NewRet(constant.NewInt(types.I32, 0))
	}
	return r
}

func intPredFor(instr mccir.Instr) ir.IntPred {
	switch instr {
	case mccir.Equals:
		return ir.IntEQ
	case mccir.NotEquals:
		return ir.IntNE
	case mccir.Smaller:
		return ir.IntSLT
	case mccir.Greater:
		return ir.IntSGT
	case mccir.SmallerEq:
		return ir.IntSLE
	case mccir.GreaterEq:
		return ir.IntSGE
	default:
		return ir.IntEQ
	}
}

func resolveArg(a *mccir.Arg, vals map[string]value.Value, rowVals map[*mccir.Row]value.Value) value.Value {
	if a == nil {
		return constant.NewInt(types.I32, 0)
	}
	switch a.Kind {
	case mccir.LitInt:
		return constant.NewInt(types.I32, a.IntVal)
	case mccir.LitBool:
		v := int64(0)
		if a.BoolVal {
			v = 1
		}
		return constant.NewInt(types.I1, v)
	case mccir.LitFloat:
		return constant.NewFloat(types.Double, a.FloatVal)
	case mccir.LitString:
		return constant.NewCharArrayFromString(a.StringVal + "\x00")
	case mccir.Ident:
		if v, ok := vals[a.Name]; ok {
			return v
		}
		return constant.NewInt(types.I32, 0)
	case mccir.RowRef:
		if v, ok := rowVals[a.Row]; ok {
			return v
		}
		return constant.NewInt(types.I32, 0)
	default:
		return constant.NewInt(types.I32, 0)
	}
}
