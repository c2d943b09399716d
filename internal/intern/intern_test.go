package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIdentity(t *testing.T) {
	a := EncodeString("alice")
	b := EncodeString("alice")
	c := EncodeString("bob")
	assert.Equal(t, a, b, "encode(x) must equal encode(y) when the bytes match")
	assert.NotEqual(t, a, c)
}

func TestDecodeRoundTrip(t *testing.T) {
	s := EncodeString("hello world")
	require.Equal(t, "hello world", s.String())
}

func TestSentinels(t *testing.T) {
	assert.True(t, IsSpecial(Empty))
	assert.True(t, IsSpecial(Newline))
	assert.False(t, IsSpecial(EncodeString("x")))
	assert.Equal(t, "", Empty.String())
	assert.Equal(t, "\n", Newline.String())
}

func TestAppend(t *testing.T) {
	a := EncodeString("foo")
	b := EncodeString("bar")
	got := Append(a, b)
	assert.Equal(t, "foobar", got.String())
}

func TestCmp(t *testing.T) {
	a := EncodeString("a")
	b := EncodeString("b")
	assert.Equal(t, -1, Cmp(a, b))
	assert.Equal(t, 1, Cmp(b, a))
	assert.Equal(t, 0, Cmp(a, a))
}
