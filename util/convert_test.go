package util

import (
	"errors"
	"testing"

	"github.com/napalu/heifopt/types"
	"github.com/stretchr/testify/assert"
)

func TestConvertString(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var s string
		assert.NoError(t, ConvertString("/tmp/in.png", &s, "input"))
		assert.Equal(t, "/tmp/in.png", s)
	})

	t.Run("bool", func(t *testing.T) {
		var b bool
		assert.NoError(t, ConvertString("true", &b, "lossless"))
		assert.True(t, b)
		err := ConvertString("maybe", &b, "lossless")
		assert.True(t, errors.Is(err, ErrParseBool))
	})

	t.Run("uint8", func(t *testing.T) {
		var u uint8
		assert.NoError(t, ConvertString("100", &u, "quality"))
		assert.Equal(t, uint8(100), u)

		err := ConvertString("256", &u, "quality")
		assert.True(t, errors.Is(err, ErrParseOverflow))

		err = ConvertString("-1", &u, "quality")
		assert.True(t, errors.Is(err, ErrParseInt))
	})

	t.Run("int", func(t *testing.T) {
		var i int
		assert.NoError(t, ConvertString("-42", &i, "n"))
		assert.Equal(t, -42, i)
		err := ConvertString("4x2", &i, "n")
		assert.True(t, errors.Is(err, ErrParseInt))
		assert.Contains(t, err.Error(), "'n'")
	})

	t.Run("unsupported", func(t *testing.T) {
		var f float64
		err := ConvertString("1.5", &f, "ratio")
		assert.True(t, errors.Is(err, ErrUnsupportedTypeConversion))
	})
}

func TestZero(t *testing.T) {
	s := "x265"
	u8 := uint8(80)
	b := true

	assert.NoError(t, Zero(&s))
	assert.NoError(t, Zero(&u8))
	assert.NoError(t, Zero(&b))
	assert.Equal(t, "", s)
	assert.Equal(t, uint8(0), u8)
	assert.False(t, b)

	var nilPtr *string
	assert.True(t, errors.Is(Zero(nilPtr), ErrPointerExpected))
	assert.True(t, errors.Is(Zero(s), ErrPointerExpected))
}

func TestCanConvert(t *testing.T) {
	var (
		b   bool
		s   string
		u8  uint8
		i   int
		f64 float64
	)

	tests := []struct {
		name       string
		data       any
		optionType types.OptionType
		ok         bool
	}{
		{"standalone bool", &b, types.Standalone, true},
		{"standalone string", &s, types.Standalone, false},
		{"counter uint8", &u8, types.Counter, true},
		{"counter int", &i, types.Counter, true},
		{"counter bool", &b, types.Counter, false},
		{"single string", &s, types.Single, true},
		{"single uint8", &u8, types.Single, true},
		{"file string", &s, types.File, true},
		{"single float", &f64, types.Single, false},
		{"not a pointer", s, types.Single, false},
		{"nil", nil, types.Single, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CanConvert(tt.data, tt.optionType)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
