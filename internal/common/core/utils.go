package core

import "strings"

// MethodBuilder constructs the dotted method names used by the
// hypervisor's XML-RPC surface (e.g. "VM.get_all_records",
// "VDI.destroy") in a consistent, fluent way across every gateway
// sub-service, mirroring how the teacher SDK built REST resource paths
// with its PathBuilder.
type MethodBuilder struct {
	segments []string
}

func NewMethodBuilder() *MethodBuilder {
	return &MethodBuilder{segments: []string{}}
}

// Namespace adds the object namespace the method belongs to (e.g. "VM").
func (m *MethodBuilder) Namespace(namespace string) *MethodBuilder {
	m.segments = append(m.segments, namespace)
	return m
}

// Action adds the verb within the namespace (e.g. "get_all_records").
func (m *MethodBuilder) Action(action string) *MethodBuilder {
	m.segments = append(m.segments, action)
	return m
}

// Build returns the dotted method name.
func (m *MethodBuilder) Build() string {
	return strings.Join(m.segments, ".")
}

// Method is a convenience function for the common two-segment case.
func Method(namespace, action string) string {
	return namespace + "." + action
}
