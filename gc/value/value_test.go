package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskvm/duskgc/gc/value"
)

func TestFuncDefValueRoundTrip(t *testing.T) {
	def := value.NewFuncDef(nil, nil, nil)
	v := value.FuncDefValue(def)

	assert.Equal(t, value.TagBool, v.Tag)
	got, ok := value.AsFuncDef(v)
	require.True(t, ok)
	assert.Same(t, def, got)

	// An ordinary boolean must not be mistaken for a nested FuncDef.
	_, ok = value.AsFuncDef(value.Boolean(true))
	assert.False(t, ok)
}

func TestHashTupleIsStableAndContentSensitive(t *testing.T) {
	a := []value.Value{value.Number(1), value.Number(2)}
	b := []value.Value{value.Number(1), value.Number(2)}
	c := []value.Value{value.Number(2), value.Number(1)}

	assert.Equal(t, value.HashTuple(a), value.HashTuple(b))
	assert.NotEqual(t, value.HashTuple(a), value.HashTuple(c))
}

func TestTableSelfReferenceRoundTrips(t *testing.T) {
	tbl := value.NewTable(1)
	self := value.FromTable(tbl)
	tbl.Put(self, self)

	got, ok := tbl.Get(self)
	require.True(t, ok)
	assert.Equal(t, self, got)
}

func TestArrayPushTracksCount(t *testing.T) {
	a := value.NewArray(2)
	a.Push(value.Number(1))
	a.Push(value.Number(2))
	assert.Equal(t, 2, a.Count)
	assert.Len(t, a.Data, 2)
}
