package config

import (
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse([]string{
		"-width", "800", "-height", "600",
		"-pen-color", "red", "-pen-width", "7",
		"-background", "#102030",
		"-print-dpi", "300", "-v",
		"drawing.png",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, cfg.PenColor)
	assert.Equal(t, 7, cfg.PenWidth)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.Background)
	assert.Equal(t, 300.0, cfg.PrintDPI)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "drawing.png", cfg.Open)
}

func TestParse_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-height", "-4"},
		{"-pen-color", "notacolor"},
		{"-print-dpi", "0"},
		{"-open", "a.png", "b.png"},
		{"a.png", "b.png"},
		{"-nosuchflag"},
	} {
		_, err := Parse(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]color.NRGBA{
		"black":          {A: 0xff},
		"CornflowerBlue": {R: 100, G: 149, B: 237, A: 0xff},
		"#fff":           {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		"00ff00":         {G: 0xff, A: 0xff},
		"#11223380":      {R: 0x11, G: 0x22, B: 0x33, A: 0x80},
		" #abc ":         {R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff},
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "#12", "#ggg", "#1234567", "blurple"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}
