package vm

import (
	"fmt"

	"fathom/pkg/errors"
)

// Thrown script-level values travel through Go code as errors. An
// exceptionError wraps the exception value so builtin helpers can return it
// through ordinary error plumbing; the evaluator unwraps it at its catch
// boundary with ExceptionValue.
type exceptionError struct {
	exception Value
}

func (e exceptionError) Error() string {
	ex := e.exception
	if ex.IsObject() {
		obj := ex.AsPlainObject()
		if nameRec := obj.GetOwnProp("name"); nameRec != nil {
			name := nameRec.Value.ToString()
			msg := ""
			if msgRec := obj.GetOwnProp("message"); msgRec != nil {
				msg = msgRec.Value.ToString()
			}
			if msg == "" {
				return name
			}
			return name + ": " + msg
		}
	}
	return ex.ToString()
}

// Throw wraps a script value as a Go error for propagation to the evaluator.
func (vm *VM) Throw(exception Value) error {
	return exceptionError{exception: exception}
}

// NewTypeError constructs a TypeError exception error for builtin helpers to
// return. The exception surfaces to script code as a catchable error object
// carrying the formatted message, not as a process-level failure.
func (vm *VM) NewTypeError(format string, args ...interface{}) error {
	objVal := NewObject(vm.ObjectPrototype)
	obj := objVal.AsPlainObject()
	obj.table.setOwn("name", NewString("TypeError"), true, false, true)
	obj.table.setOwn("message", NewString(fmt.Sprintf(format, args...)), true, false, true)
	return exceptionError{exception: objVal}
}

// ExceptionValue unwraps the thrown script value from an error produced by
// Throw or NewTypeError. ok is false for ordinary Go errors.
func ExceptionValue(err error) (Value, bool) {
	if ee, ok := err.(exceptionError); ok {
		return ee.exception, true
	}
	return Undefined, false
}

// IsTypeError reports whether err carries a thrown TypeError value.
func IsTypeError(err error) bool {
	ex, ok := ExceptionValue(err)
	if !ok || !ex.IsObject() {
		return false
	}
	rec := ex.AsPlainObject().GetOwnProp("name")
	return rec != nil && rec.Value.IsString() && rec.Value.AsString() == "TypeError"
}

// ReportUncaught records an exception that escaped every script handler as an
// embedder-facing runtime error.
func (vm *VM) ReportUncaught(err error) {
	vm.errs = append(vm.errs, (&errors.RuntimeError{
		Msg: fmt.Sprintf("Uncaught exception: %s", err.Error()),
	}).CausedBy(err))
}
