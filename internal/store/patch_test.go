package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestPatchEmpty(t *testing.T) {
	var p Patch
	assert.True(t, p.Empty())

	SetIf(&p, "title", (*string)(nil))
	assert.True(t, p.Empty(), "nil fields must not produce assignments")

	SetIf(&p, "title", strPtr("x"))
	assert.False(t, p.Empty())
}

func TestPatchSkipsNilFields(t *testing.T) {
	var p Patch
	SetIf(&p, "first_name", strPtr("Ada"))
	SetIf(&p, "last_name", (*string)(nil))
	SetIf(&p, "level", intPtr(3))

	set, args := p.Build(1)
	assert.Equal(t, "first_name = $1, level = $2", set)
	require.Len(t, args, 2)
	assert.Equal(t, "Ada", args[0])
	assert.Equal(t, 3, args[1])
}

func TestPatchBuildOffset(t *testing.T) {
	var p Patch
	p.Set("status", "confirmed")
	p.Set("type", "online")

	set, args := p.Build(4)
	assert.Equal(t, "status = $4, type = $5", set)
	assert.Equal(t, []any{"confirmed", "online"}, args)
}

func TestPatchPreservesCallOrder(t *testing.T) {
	var p Patch
	SetIf(&p, "b", strPtr("2"))
	SetIf(&p, "a", strPtr("1"))

	set, _ := p.Build(1)
	assert.Equal(t, "b = $1, a = $2", set)
}
