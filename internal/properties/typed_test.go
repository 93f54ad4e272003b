package properties

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedConversions(t *testing.T) {
	t.Parallel()

	store, err := Load(strings.NewReader(
		"bool=true\r\n" +
			"bool1=1\n" +
			"int=-1\n" +
			"uint=42\n" +
			"long=-65537\n" +
			"ulong=65537"))
	require.NoError(t, err)

	b, ok := store.GetBool("bool")
	require.True(t, ok)
	require.True(t, b)

	b, ok = store.GetBool("bool1")
	require.True(t, ok)
	require.True(t, b)

	i, ok := store.GetInt("int")
	require.True(t, ok)
	require.Equal(t, int32(-1), i)

	u, ok := store.GetUInt("uint")
	require.True(t, ok)
	require.Equal(t, uint32(42), u)

	l, ok := store.GetLong("long")
	require.True(t, ok)
	require.Equal(t, int64(-65537), l)

	ul, ok := store.GetULong("ulong")
	require.True(t, ok)
	require.Equal(t, uint64(65537), ul)
}

func TestTypedConversionFailures(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set("trailing", "1x")
	store.Set("spaced", "42 x")
	store.Set("empty", "")
	store.Set("negative", "-1")
	store.Set("big", "4294967296")
	store.Set("word", "yes")

	_, ok := store.GetInt("trailing")
	require.False(t, ok)
	_, ok = store.GetInt("spaced")
	require.False(t, ok)
	_, ok = store.GetInt("empty")
	require.False(t, ok)
	_, ok = store.GetInt("absent")
	require.False(t, ok)
	_, ok = store.GetUInt("negative")
	require.False(t, ok)
	_, ok = store.GetULong("negative")
	require.False(t, ok)
	_, ok = store.GetUInt("big")
	require.False(t, ok, "overflows 32 bits")
	_, ok = store.GetInt("big")
	require.False(t, ok, "overflows 32 bits")

	v, ok := store.GetLong("big")
	require.True(t, ok)
	require.Equal(t, int64(4294967296), v)

	_, ok = store.GetBool("word")
	require.False(t, ok)
	_, ok = store.GetBool("absent")
	require.False(t, ok)
}

func TestTypedConversionWhitespaceAndSign(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set("padded", "  7\t")
	store.Set("plus", "+5")

	i, ok := store.GetInt("padded")
	require.True(t, ok)
	require.Equal(t, int32(7), i)

	u, ok := store.GetUInt("plus")
	require.True(t, ok)
	require.Equal(t, uint32(5), u)
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{in: "true", want: true, wantOK: true},
		{in: "TRUE", want: true, wantOK: true},
		{in: "False", want: false, wantOK: true},
		{in: "1", want: true, wantOK: true},
		{in: "0", want: false, wantOK: true},
		{in: "-3", want: true, wantOK: true},
		{in: " true ", want: true, wantOK: true},
		{in: "true x", wantOK: false},
		{in: "yes", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tc := range testCases {
		got, ok := ParseBool(tc.in)
		require.Equal(t, tc.wantOK, ok, tc.in)
		if tc.wantOK {
			require.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestGetString(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set("empty", "")
	store.Set("text", " raw ")

	v, ok := store.GetString("empty")
	require.True(t, ok)
	require.Equal(t, "", v)

	v, ok = store.GetString("text")
	require.True(t, ok)
	require.Equal(t, " raw ", v)
}
