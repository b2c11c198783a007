package entity

// Fixed name tables backing the high-level entity catalog. Order is part of
// the vocabulary contract: entity_id is an index into the concatenation of
// these tables, so reordering or inserting mid-table invalidates every
// vocabulary trained against the previous layout. Append only.

// irOpcodes is the full high-level operator set, in stable order.
var irOpcodes = []string{
	"Ret",
	"Br",
	"Switch",
	"IndirectBr",
	"Invoke",
	"Resume",
	"Unreachable",
	"CleanupRet",
	"CatchRet",
	"CatchSwitch",
	"CallBr",
	"FNeg",
	"Add",
	"FAdd",
	"Sub",
	"FSub",
	"Mul",
	"FMul",
	"UDiv",
	"SDiv",
	"FDiv",
	"URem",
	"SRem",
	"FRem",
	"Shl",
	"LShr",
	"AShr",
	"And",
	"Or",
	"Xor",
	"Alloca",
	"Load",
	"Store",
	"GetElementPtr",
	"Fence",
	"AtomicCmpXchg",
	"AtomicRMW",
	"Trunc",
	"ZExt",
	"SExt",
	"FPToUI",
	"FPToSI",
	"UIToFP",
	"SIToFP",
	"FPTrunc",
	"FPExt",
	"PtrToInt",
	"IntToPtr",
	"BitCast",
	"AddrSpaceCast",
	"CleanupPad",
	"CatchPad",
	"ICmp",
	"FCmp",
	"PHI",
	"Call",
	"Select",
	"UserOp1",
	"UserOp2",
	"VAArg",
	"ExtractElement",
	"InsertElement",
	"ShuffleVector",
	"ExtractValue",
	"InsertValue",
	"LandingPad",
	"Freeze",
}

// irTypeKinds are the canonical result type kinds at IR level. Types the
// namer does not recognize canonicalize to UnknownTy.
var irTypeKinds = []string{
	"VoidTy",
	"FloatTy",
	"IntegerTy",
	"FunctionTy",
	"PointerTy",
	"StructTy",
	"ArrayTy",
	"VectorTy",
	"LabelTy",
	"TokenTy",
	"MetadataTy",
	"UnknownTy",
}

// irOperandKinds are the operand category entities at IR level. All four
// are part of the vocabulary key space even though only defined values
// (Variable, Pointer) are emitted as argument relations.
var irOperandKinds = []string{
	"Function",
	"Pointer",
	"Constant",
	"Variable",
}

// machineOperandKinds are the operand category entities at machine level.
var machineOperandKinds = []string{
	"Register",
	"Immediate",
	"Label",
}

// machineNoClass is the result-class entity for machine instructions that
// define no register.
const machineNoClass = "NoClass"
