package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/docnav/internal/config"
)

func TestLighten(t *testing.T) {
	grey := colorful.Color{R: float64(0x80) / 255.0, G: float64(0x80) / 255.0, B: float64(0x80) / 255.0}

	for name, tc := range map[string]struct {
		input      colorful.Color
		percentage int
		expected   colorful.Color
	}{
		"0% -> no change": {
			input:      colorful.Color{R: float64(0x12) / 255.0, G: float64(0x34) / 255.0, B: float64(0x56) / 255.0},
			percentage: 0,
			expected:   colorful.Color{R: float64(0x12) / 255.0, G: float64(0x34) / 255.0, B: float64(0x56) / 255.0},
		},
		"100% -> white": {
			input:      colorful.Color{R: float64(0x12) / 255.0, G: float64(0x34) / 255.0, B: float64(0x56) / 255.0},
			percentage: 100,
			expected:   colorful.Color{R: 1.0, G: 1.0, B: 1.0},
		},
		"50% -> 50% lighter": {
			input:      grey,
			percentage: 50,
			expected:   colorful.Color{R: float64(0xc0) / 255.0, G: float64(0xc0) / 255.0, B: float64(0xc0) / 255.0},
		},
	} {
		t.Run(name, func(t *testing.T) {
			result := lightenColorfulColor(tc.input, tc.percentage)
			assert.True(t, result.AlmostEqualRgb(tc.expected), "%s instead of %s", result.Hex(), tc.expected.Hex())
		})
	}

	t.Run("100% darker -> black", func(t *testing.T) {
		result := darkenColorfulColor(grey, 100)
		assert.True(t, result.AlmostEqualRgb(colorful.Color{}), "%s instead of black", result.Hex())
	})
}

func TestStyleFromHex(t *testing.T) {
	s, err := StyleFromHex("#ff0000", "#000000")
	require.NoError(t, err)
	fg, bg, attrs := s.Bolded().AsTcell().Decompose()
	assert.Equal(t, tcell.NewHexColor(0xff0000), fg)
	assert.Equal(t, tcell.NewHexColor(0x000000), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	_, err = StyleFromHex("red", "#000000")
	assert.Error(t, err)
	_, err = StyleFromHex("#ffffff", "")
	assert.Error(t, err)
}

func TestNewStylesheetFromConfig(t *testing.T) {
	for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
		s, err := NewStylesheetFromConfig(config.Default(theme).Stylesheet)
		require.NoError(t, err)
		assert.NotNil(t, s.Editor)
		assert.NotNil(t, s.LogEntryTime)
		assert.Equal(t, s.Heading, s.ForHeading(1))
		assert.Equal(t, s.Subheading, s.ForHeading(3))
	}

	broken := config.Default(config.Dark).Stylesheet
	broken.Code.Fg = "#nope"
	_, err := NewStylesheetFromConfig(broken)
	assert.ErrorContains(t, err, "code")
}

func TestEmphasisAndDimming(t *testing.T) {
	dark, err := StyleFromHex("#ffffff", "#000000")
	require.NoError(t, err)
	_, bg, _ := dark.DefaultEmphasized().AsTcell().Decompose()
	assert.NotEqual(t, tcell.NewHexColor(0x000000), bg, "emphasis on dark background should lighten it")

	fg, _, _ := dark.DefaultDimmed().AsTcell().Decompose()
	assert.NotEqual(t, tcell.NewHexColor(0xffffff), fg)
}
