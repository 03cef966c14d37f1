package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	v, err := ToInt("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = ToInt("forty-two")
	assert.Error(t, err)
}

func TestToInt64(t *testing.T) {
	v, err := ToInt64("9000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(9000000000), v)
}

func TestToUint(t *testing.T) {
	v, err := ToUint("7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), v)

	_, err = ToUint("-7")
	assert.Error(t, err)
}

func TestToFloat64(t *testing.T) {
	v, err := ToFloat64("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestToBool(t *testing.T) {
	v, err := ToBool("true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = ToBool("yep")
	assert.Error(t, err)
}

func TestToDuration(t *testing.T) {
	v, err := ToDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, v)
}

func TestToString(t *testing.T) {
	v, err := ToString("as-is")
	require.NoError(t, err)
	assert.Equal(t, "as-is", v)
}
