package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodBuilder(t *testing.T) {
	t.Run("empty builder returns empty string", func(t *testing.T) {
		builder := NewMethodBuilder()
		assert.Equal(t, "", builder.Build())
	})

	t.Run("namespace only", func(t *testing.T) {
		builder := NewMethodBuilder().Namespace("VM")
		assert.Equal(t, "VM", builder.Build())
	})

	t.Run("namespace with action", func(t *testing.T) {
		builder := NewMethodBuilder().Namespace("VM").Action("get_all_records")
		assert.Equal(t, "VM.get_all_records", builder.Build())
	})

	t.Run("snapshot action", func(t *testing.T) {
		builder := NewMethodBuilder().Namespace("VDI").Action("destroy")
		assert.Equal(t, "VDI.destroy", builder.Build())
	})

	t.Run("session namespace", func(t *testing.T) {
		builder := NewMethodBuilder().Namespace("session").Action("login_with_password")
		assert.Equal(t, "session.login_with_password", builder.Build())
	})
}

func TestMethod(t *testing.T) {
	assert.Equal(t, "VM.get_all_records", Method("VM", "get_all_records"))
	assert.Equal(t, "VDI.destroy", Method("VDI", "destroy"))
	assert.Equal(t, "session.logout", Method("session", "logout"))
}
