package ast

// ValueType represents the variant held by a Value
type ValueType uint16

// Value types
const (
	valueTypeScalar ValueType = 128
	valueTypeVector ValueType = 256

	ValueTypeVoid ValueType = 0

	ValueTypeInt    = valueTypeScalar | 1
	ValueTypeFloat  = valueTypeScalar | 2
	ValueTypeBool   = valueTypeScalar | 4
	ValueTypeString = valueTypeScalar | 8

	ValueTypeSymbol  ValueType = 16
	ValueTypeKeyword ValueType = 32
	ValueTypeLambda  ValueType = 64

	ValueTypeList = valueTypeVector | 1
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeVoid:    "Void",
	ValueTypeInt:     "Integer",
	ValueTypeFloat:   "Float",
	ValueTypeBool:    "Bool",
	ValueTypeString:  "Str",
	ValueTypeSymbol:  "Symbol",
	ValueTypeKeyword: "Keyword",
	ValueTypeLambda:  "Lambda",
	ValueTypeList:    "List",
}
