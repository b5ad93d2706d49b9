package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_Empty(t *testing.T) {
	var info Info
	assert.Equal(t, ".", info.String())
	assert.Equal(t, 0, info.Len())
	assert.False(t, info.Has("A"))
}

func TestInfo_InsertionOrder(t *testing.T) {
	var info Info
	info.AddList("ZED", []string{"1"})
	info.AddList("ALPHA", []string{"a", "b"})
	info.AddFlag("FLAG")
	info.AddList("MID", []string{""})

	assert.Equal(t, []string{"ZED", "ALPHA", "FLAG", "MID"}, info.Keys())
	assert.Equal(t, "ZED=1;ALPHA=a,b;FLAG;MID=", info.String())
}

func TestInfo_ReplaceKeepsPosition(t *testing.T) {
	var info Info
	info.AddList("A", []string{"1"})
	info.AddList("B", []string{"2"})
	info.AddList("A", []string{"3", "4"})

	assert.Equal(t, []string{"A", "B"}, info.Keys())
	assert.Equal(t, "A=3,4;B=2", info.String())
}

func TestInfo_Get(t *testing.T) {
	var info Info
	info.AddList("HGNC", []string{"BRCA1"})
	info.AddFlag("PATHOGENIC")

	v, ok := info.Get("HGNC")
	require.True(t, ok)
	assert.Equal(t, ListValue{"BRCA1"}, v)

	v, ok = info.Get("PATHOGENIC")
	require.True(t, ok)
	assert.IsType(t, FlagValue{}, v)

	_, ok = info.Get("CONFLICTED")
	assert.False(t, ok)
}

func TestInfo_Entries(t *testing.T) {
	var info Info
	info.AddFlag("X")
	entries := info.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "X", entries[0].Key)
}
