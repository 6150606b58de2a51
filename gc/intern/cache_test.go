package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskvm/duskgc/gc/intern"
	"github.com/duskvm/duskgc/gc/value"
)

func TestInternReturnsCanonicalValue(t *testing.T) {
	c := intern.NewCache()
	a := value.FromString(value.NewString("hi"))
	b := value.FromString(value.NewString("hi"))
	hash := value.NewString("hi").Hash

	got1 := c.Intern(a, hash)
	got2 := c.Intern(b, hash)

	assert.Equal(t, a, got1)
	assert.Equal(t, a, got2, "second intern of an equal-hash value returns the first")
	assert.Equal(t, 1, c.Len())
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := intern.NewCache()
	s := value.NewString("bye")
	v := value.FromString(s)
	c.Intern(v, s.Hash)

	require.Equal(t, 1, c.Len())
	c.Remove(v)
	assert.Equal(t, 0, c.Len())

	assert.NotPanics(t, func() { c.Remove(v) })
	assert.Equal(t, 0, c.Len())
}

func TestRemoveIgnoresNonInternedKinds(t *testing.T) {
	c := intern.NewCache()
	assert.NotPanics(t, func() { c.Remove(value.Number(4)) })
}
