package vm

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeNull

	TypeBoolean

	TypeFloatNumber
	TypeIntegerNumber

	TypeString

	TypeObject
	TypeArray

	TypeNativeFunction
)

// String returns a human-readable string representation of the ValueType
func (vt ValueType) String() string {
	switch vt {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeFloatNumber, TypeIntegerNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeNativeFunction:
		return "native function"
	default:
		return "unknown"
	}
}

type StringObject struct {
	Object
	value string
}

// Value is the runtime representation of every datum: a type tag plus either
// an inline payload (booleans, numbers) or a pointer to a heap object
// (strings, objects, arrays, functions). Object identity lives in the pointed
// record, not in the Value wrapper; copying a Value never copies an object.
type Value struct {
	typ     ValueType
	payload uint64
	obj     unsafe.Pointer
}

var (
	Undefined = Value{typ: TypeUndefined}
	Null      = Value{typ: TypeNull}
	True      = Value{typ: TypeBoolean, payload: 1}
	False     = Value{typ: TypeBoolean, payload: 0}
	NaN       = Value{typ: TypeFloatNumber, payload: math.Float64bits(math.NaN())}
)

func NumberValue(value float64) Value {
	return Value{typ: TypeFloatNumber, payload: math.Float64bits(value)}
}

func IntegerValue(value int32) Value {
	return Value{typ: TypeIntegerNumber, payload: uint64(int64(value))}
}

func BooleanValue(value bool) Value {
	if value {
		return True
	}
	return False
}

func NewString(value string) Value {
	return Value{typ: TypeString, obj: unsafe.Pointer(&StringObject{value: value})}
}

func (v Value) IsUndefined() bool {
	return v.typ == TypeUndefined
}

func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

func (v Value) IsBoolean() bool {
	return v.typ == TypeBoolean
}

func (v Value) IsNumber() bool {
	return v.typ == TypeFloatNumber || v.typ == TypeIntegerNumber
}

func (v Value) IsString() bool {
	return v.typ == TypeString
}

func (v Value) IsObject() bool {
	return v.typ == TypeObject
}

func (v Value) IsArray() bool {
	return v.typ == TypeArray
}

func (v Value) IsCallable() bool {
	return v.typ == TypeNativeFunction
}

func (v Value) Type() ValueType {
	return v.typ
}

func (v Value) TypeName() string {
	switch v.typ {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeFloatNumber, TypeIntegerNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeNativeFunction:
		return "function"
	case TypeObject, TypeArray:
		return "object"
	default:
		return fmt.Sprintf("<unknown type: %d>", v.typ)
	}
}

func (v Value) AsBoolean() bool {
	if v.typ != TypeBoolean {
		panic("value is not a boolean")
	}
	return v.payload != 0
}

func (v Value) AsFloat() float64 {
	if v.typ != TypeFloatNumber {
		panic("value is not a float")
	}
	return math.Float64frombits(v.payload)
}

func (v Value) AsInteger() int32 {
	if v.typ != TypeIntegerNumber {
		panic("value is not an integer")
	}
	return int32(v.payload)
}

// ToFloat coerces either number representation to float64.
func (v Value) ToFloat() float64 {
	switch v.typ {
	case TypeFloatNumber:
		return v.AsFloat()
	case TypeIntegerNumber:
		return float64(v.AsInteger())
	default:
		panic("value is not a number")
	}
}

func (v Value) AsString() string {
	if v.typ != TypeString {
		panic("value is not a string")
	}
	return (*StringObject)(v.obj).value
}

func (v Value) AsPlainObject() *PlainObject {
	if v.typ != TypeObject {
		panic("value is not an object")
	}
	return (*PlainObject)(v.obj)
}

func (v Value) AsArray() *ArrayObject {
	if v.typ != TypeArray {
		panic("value is not an array")
	}
	return (*ArrayObject)(v.obj)
}

func (v Value) AsNativeFunction() *NativeFunctionObject {
	if v.typ != TypeNativeFunction {
		panic("value is not a native function")
	}
	return (*NativeFunctionObject)(v.obj)
}

// ToString coerces a value to its string representation. Property names reach
// the resolver through this path when the evaluator indexes with a non-string
// key.
func (v Value) ToString() string {
	switch v.typ {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.AsBoolean() {
			return "true"
		}
		return "false"
	case TypeIntegerNumber:
		return strconv.FormatInt(int64(v.AsInteger()), 10)
	case TypeFloatNumber:
		return formatFloat(v.AsFloat())
	case TypeString:
		return v.AsString()
	case TypeNativeFunction:
		name := v.AsNativeFunction().Name
		if name == "" {
			name = "anonymous"
		}
		return "function " + name + "() { [native code] }"
	case TypeArray:
		return "[object Array]"
	case TypeObject:
		return "[object Object]"
	default:
		return fmt.Sprintf("<unknown type: %d>", v.typ)
	}
}

// formatFloat renders a float the way script code expects: integral values
// collapse to their integer form, NaN and the infinities use their JS names.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// --- Equality ---

// Is compares two values for identity based on the SameValueZero algorithm:
// NaN is NaN, +0 is -0, strings compare by content, objects by the identity
// of their heap record.
func (v Value) Is(other Value) bool {
	if v.typ != other.typ {
		// Handle cross-Number type comparisons
		if v.IsNumber() && other.IsNumber() {
			vf := v.ToFloat()
			of := other.ToFloat()
			if math.IsNaN(vf) && math.IsNaN(of) {
				return true
			}
			return vf == of
		}
		return false
	}

	switch v.typ {
	case TypeUndefined, TypeNull:
		return true // Singleton types are always equal to themselves
	case TypeBoolean:
		return v.AsBoolean() == other.AsBoolean()
	case TypeIntegerNumber:
		return v.AsInteger() == other.AsInteger()
	case TypeFloatNumber:
		vf := v.AsFloat()
		of := other.AsFloat()
		if math.IsNaN(vf) && math.IsNaN(of) {
			return true
		}
		return vf == of
	case TypeString:
		return v.AsString() == other.AsString()
	default:
		// Objects, arrays and functions compare by heap identity.
		return v.obj == other.obj
	}
}

// Inspect returns a debug rendering of a value, quoting strings so they are
// distinguishable from coerced primitives in test failures and REPL output.
func (v Value) Inspect() string {
	if v.typ == TypeString {
		return strconv.Quote(v.AsString())
	}
	return v.ToString()
}
