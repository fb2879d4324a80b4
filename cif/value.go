package cif

import "fmt"

// Value denotes the value of a data item. Its underlying type is either a
// string (an inline or semicolon text field item) or a []string (a column
// of a loop). Values are never converted to numbers; see Numerical for
// reading the common "4.9900(2)" form.
type Value interface {
	// String returns this value as a string. If it is a loop column, then
	// the empty string is returned.
	String() string

	// Strings returns this value as a []string. If it is not a loop column,
	// then nil is returned.
	Strings() []string

	// IsLoop reports whether the value was declared in a loop.
	IsLoop() bool

	// Raw provides the underlying string or []string value. The interface
	// returned may be used in a type switch.
	Raw() interface{}
}

type cifString string

func (cs cifString) String() string    { return string(cs) }
func (cs cifString) Strings() []string { return nil }
func (cs cifString) IsLoop() bool      { return false }
func (cs cifString) Raw() interface{}  { return string(cs) }

type cifStrings []string

func (cs cifStrings) String() string    { return "" }
func (cs cifStrings) Strings() []string { return []string(cs) }
func (cs cifStrings) IsLoop() bool      { return true }
func (cs cifStrings) Raw() interface{}  { return []string(cs) }

// AsValue returns a value that satisfies the Value interface if v has type
// string or []string. If v has any other type, this function will panic.
func AsValue(v interface{}) Value {
	switch v := v.(type) {
	case string:
		return cifString(v)
	case []string:
		return cifStrings(v)
	}
	panic(fmt.Sprintf("Type '%T' cannot be represented as a CIF value.", v))
}
