package vm

import "unsafe"

// Object is the embedded marker shared by all heap object records.
type Object struct {
}

// PropRecord is a single named slot in an object's property table: the value
// reference, the three attribute flags, and the circular marker computed at
// assignment time. Name is immutable once the record is inserted; attributes
// change only through SetProp/defineProperty, never on read.
type PropRecord struct {
	Name         string
	Value        Value
	Writable     bool
	Enumerable   bool
	Configurable bool
	// Circular is true iff Value is the owning object itself. The marker lets
	// graph walkers (printing, marking) skip self-references without chasing
	// the pointer again.
	Circular bool
}

// PropTable is an insertion-ordered associative store from property name to
// record. Iteration order is the insertion order of currently-present records;
// a Go map alone would not give that guarantee, so the table keeps a record
// slice alongside a name index. The table is attribute-blind: enforcement of
// writable/extensible/sealed/frozen belongs to the resolver layer.
type PropTable struct {
	records []*PropRecord
	index   map[string]int
}

func (t *PropTable) getOwn(name string) *PropRecord {
	if t.index == nil {
		return nil
	}
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.records[i]
}

// setOwn inserts a record or updates an existing one in place. Both the value
// and the attribute flags are taken from the arguments on every call;
// redefining a property does not preserve its prior attributes.
func (t *PropTable) setOwn(name string, value Value, writable, enumerable, configurable bool) *PropRecord {
	if rec := t.getOwn(name); rec != nil {
		rec.Value = value
		rec.Writable = writable
		rec.Enumerable = enumerable
		rec.Configurable = configurable
		return rec
	}
	rec := &PropRecord{
		Name:         name,
		Value:        value,
		Writable:     writable,
		Enumerable:   enumerable,
		Configurable: configurable,
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[name] = len(t.records)
	t.records = append(t.records, rec)
	return rec
}

// deleteOwn removes the record if present; absent is a no-op. Survivors keep
// their relative insertion order.
func (t *PropTable) deleteOwn(name string) {
	if t.index == nil {
		return
	}
	i, ok := t.index[name]
	if !ok {
		return
	}
	delete(t.index, name)
	t.records = append(t.records[:i], t.records[i+1:]...)
	for j := i; j < len(t.records); j++ {
		t.index[t.records[j].Name] = j
	}
}

// ownRecords returns a snapshot of the records in insertion order. Each call
// restarts from the beginning, and the snapshot is stable under mutation of
// the table during iteration.
func (t *PropTable) ownRecords() []*PropRecord {
	out := make([]*PropRecord, len(t.records))
	copy(out, t.records)
	return out
}

func (t *PropTable) size() int {
	return len(t.records)
}

// PlainObject carries a property table, a prototype link used for property
// lookup fallback, a separate parent link used for lexical scope resolution,
// and the three object-level flags. Prototype and parent are Values rather
// than Go pointers so a reference cycle (object <-> prototype <-> own-property
// self-reference) stays an ordinary graph for the garbage collector.
type PlainObject struct {
	Object
	table     PropTable
	prototype Value
	parent    Value
	// Extensible flag - when false, no new properties should be added
	extensible bool
	sealed     bool
	frozen     bool
}

// GetOwnProp looks up a direct (own) property record by name. Returns nil if
// absent; absence is not an error at this layer.
func (o *PlainObject) GetOwnProp(name string) *PropRecord {
	return o.table.getOwn(name)
}

// HasOwn reports whether an own property with the given name exists.
func (o *PlainObject) HasOwn(name string) bool {
	return o.table.getOwn(name) != nil
}

// OwnRecords returns the own property records in insertion order.
func (o *PlainObject) OwnRecords() []*PropRecord {
	return o.table.ownRecords()
}

// OwnKeys returns the own enumerable property names in insertion order.
func (o *PlainObject) OwnKeys() []string {
	keys := make([]string, 0, o.table.size())
	for _, rec := range o.table.records {
		if rec.Enumerable {
			keys = append(keys, rec.Name)
		}
	}
	return keys
}

// OwnPropertyNames returns all own property names, including non-enumerable
// ones, in insertion order.
func (o *PlainObject) OwnPropertyNames() []string {
	names := make([]string, 0, o.table.size())
	for _, rec := range o.table.records {
		names = append(names, rec.Name)
	}
	return names
}

// GetPrototype returns the object's prototype link.
func (o *PlainObject) GetPrototype() Value {
	return o.prototype
}

// SetPrototype replaces the prototype link. The link denotes a lookup relation
// only; the prototype is owned by whoever created it.
func (o *PlainObject) SetPrototype(proto Value) {
	o.prototype = proto
}

// GetParent returns the parent-scope link used for lexical binding
// resolution. Disjoint from the prototype chain.
func (o *PlainObject) GetParent() Value {
	return o.parent
}

func (o *PlainObject) SetParent(parent Value) {
	o.parent = parent
}

func (o *PlainObject) IsExtensible() bool {
	return o.extensible
}

// PreventExtensions clears the extensible flag. Once cleared it cannot be set
// back.
func (o *PlainObject) PreventExtensions() {
	o.extensible = false
}

func (o *PlainObject) IsSealed() bool {
	return o.sealed
}

func (o *PlainObject) Seal() {
	o.sealed = true
}

func (o *PlainObject) IsFrozen() bool {
	return o.frozen
}

func (o *PlainObject) Freeze() {
	o.frozen = true
}

// Define the shared default prototype for plain objects
var DefaultObjectPrototype Value

// Initialize the DefaultObjectPrototype once at package initialization
func init() {
	// The default prototype is an object whose own prototype is Null.
	protoObj := &PlainObject{prototype: Null, parent: Null, extensible: true}
	DefaultObjectPrototype = Value{typ: TypeObject, obj: unsafe.Pointer(protoObj)}
}

// NewObject allocates a fresh, empty, extensible object. The prototype link is
// set to proto verbatim; pass Null for a prototype-less object. The parent
// scope link starts out Null and is wired separately by the evaluator when the
// object backs a scope.
func NewObject(proto Value) Value {
	plainObj := &PlainObject{prototype: proto, parent: Null, extensible: true}
	return Value{typ: TypeObject, obj: unsafe.Pointer(plainObj)}
}
