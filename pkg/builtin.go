package ssc

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

func defineBuiltins(b *LLVMIRBuilder) {
	b.printf = builtinPrintf(b.mod)
}

func builtinPrintf(mod *ir.Module) *ir.Func {
	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	return printf
}

// cString defines a private NUL terminated string constant and returns a
// pointer to its first byte.
func (b *LLVMIRBuilder) cString(s string) constant.Constant {
	if ptr, ok := b.strings[s]; ok {
		return ptr
	}

	data := constant.NewCharArrayFromString(s + "\x00")
	glob := b.mod.NewGlobalDef(fmt.Sprintf(".str.%d", len(b.strings)), data)
	glob.Linkage = enum.LinkagePrivate
	glob.Immutable = true

	zero := constant.NewInt(types.I32, 0)
	ptr := constant.NewGetElementPtr(data.Typ, glob, zero, zero)
	b.strings[s] = ptr

	return ptr
}
