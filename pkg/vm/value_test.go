package vm

import (
	"math"
	"testing"
)

func TestValueTypeNames(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{Undefined, "undefined"},
		{Null, "null"},
		{True, "boolean"},
		{NumberValue(1.5), "number"},
		{IntegerValue(3), "number"},
		{NewString("hi"), "string"},
		{NewObject(Null), "object"},
		{NewArray(), "object"},
		{NewNativeFunction(0, false, "f", nil), "function"},
	}
	for _, c := range cases {
		if got := c.val.TypeName(); got != c.want {
			t.Errorf("TypeName(%v) = %q, want %q", c.val.Type(), got, c.want)
		}
	}
}

func TestValueToString(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{Undefined, "undefined"},
		{Null, "null"},
		{True, "true"},
		{False, "false"},
		{IntegerValue(42), "42"},
		{NumberValue(42), "42"},
		{NumberValue(1.5), "1.5"},
		{NumberValue(math.NaN()), "NaN"},
		{NumberValue(math.Inf(1)), "Infinity"},
		{NumberValue(math.Inf(-1)), "-Infinity"},
		{NewString("abc"), "abc"},
		{NewObject(Null), "[object Object]"},
	}
	for _, c := range cases {
		if got := c.val.ToString(); got != c.want {
			t.Errorf("ToString = %q, want %q", got, c.want)
		}
	}
}

func TestValueIs(t *testing.T) {
	if !Undefined.Is(Undefined) || !Null.Is(Null) {
		t.Errorf("expected singletons to equal themselves")
	}
	if Undefined.Is(Null) {
		t.Errorf("undefined should not equal null")
	}
	if !NaN.Is(NaN) {
		t.Errorf("NaN should equal NaN under SameValueZero")
	}
	if !NumberValue(0).Is(NumberValue(math.Copysign(0, -1))) {
		t.Errorf("+0 should equal -0 under SameValueZero")
	}
	if !IntegerValue(7).Is(NumberValue(7)) {
		t.Errorf("integer 7 should equal float 7")
	}
	if !NewString("a").Is(NewString("a")) {
		t.Errorf("strings should compare by content")
	}

	o1 := NewObject(Null)
	o2 := NewObject(Null)
	if !o1.Is(o1) {
		t.Errorf("object should be identical to itself")
	}
	if o1.Is(o2) {
		t.Errorf("distinct objects should not be identical")
	}
}

func TestValueAccessorsPanicOnWrongType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected AsPlainObject on a string to panic")
		}
	}()
	NewString("nope").AsPlainObject()
}

func TestInspectQuotesStrings(t *testing.T) {
	if got := NewString("hi").Inspect(); got != "\"hi\"" {
		t.Errorf("Inspect string = %s, want quoted form", got)
	}
	if got := IntegerValue(5).Inspect(); got != "5" {
		t.Errorf("Inspect number = %s, want 5", got)
	}
}
