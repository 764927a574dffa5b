// Package xapi is the Hypervisor Gateway: a thin façade over the
// XML-RPC control API and the four bulk HTTP streaming endpoints of a
// Xen pool master. It hides opaque reference strings and null
// sentinels behind the Ref type and surfaces a fixed error taxonomy.
package xapi

// Ref is an opaque hypervisor reference ("OpaqueRef:<uuid>"). It is
// modeled as an option type rather than compared against the literal
// string "OpaqueRef:NULL" at every call site: callers ask IsNull,
// never string-compare.
type Ref string

// NullRef is the absent reference the hypervisor reports as
// "OpaqueRef:NULL".
const NullRef Ref = "OpaqueRef:NULL"

// IsNull reports whether r is the absent reference, including the Go
// zero value (an empty Ref is treated as absent too).
func (r Ref) IsNull() bool {
	return r == NullRef || r == ""
}

// Equal compares two references for identity. Hypervisor references
// are compared by equality only; they carry no other ordering.
func (r Ref) Equal(other Ref) bool {
	return r == other
}

// String returns the raw reference string.
func (r Ref) String() string {
	return string(r)
}

// RefOrNull normalises an empty string into NullRef so decoded wire
// values always compare correctly against NullRef.
func RefOrNull(s string) Ref {
	if s == "" {
		return NullRef
	}
	return Ref(s)
}
