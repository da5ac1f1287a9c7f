package naming_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wavrig/wavrig/internal/naming"
)

func TestDetectSchemeMajorityVote(t *testing.T) {
	scheme, next := naming.DetectScheme([]string{"01_a.wav", "02_b.wav", "03_c.wav", "001_d.wav"})

	require.Equal(t, naming.Scheme{DigitWidth: 2, Separator: "_"}, scheme)
	require.Equal(t, 4, next)
}

func TestDetectSchemeVotesIndependently(t *testing.T) {
	// Width and separator majorities come from different names.
	scheme, next := naming.DetectScheme([]string{"01-a.wav", "02-b.wav", "3_c.wav", "4_d.wav", "5_e.wav"})

	require.Equal(t, naming.Scheme{DigitWidth: 1, Separator: "_"}, scheme)
	require.Equal(t, 6, next)
}

func TestDetectSchemeDefault(t *testing.T) {
	scheme, next := naming.DetectScheme([]string{"kick.wav", "snare.wav"})
	require.Equal(t, naming.DefaultScheme(), scheme)
	require.Equal(t, 1, next)

	scheme, next = naming.DetectScheme(nil)
	require.Equal(t, naming.DefaultScheme(), scheme)
	require.Equal(t, 1, next)
}

func TestDetectSchemeTieBreak(t *testing.T) {
	// One vote each: ties resolve to 2-digit and "_", not map order.
	scheme, _ := naming.DetectScheme([]string{"1-a.wav", "02_b.wav"})
	require.Equal(t, naming.Scheme{DigitWidth: 2, Separator: "_"}, scheme)

	scheme, _ = naming.DetectScheme([]string{"1.a.wav", "003 b.wav"})
	require.Equal(t, 1, scheme.DigitWidth)
	require.Equal(t, ".", scheme.Separator)
}

func TestDetectSchemeSpaceDashSpace(t *testing.T) {
	scheme, next := naming.DetectScheme([]string{"01 - intro.wav", "02 - verse.wav"})
	require.Equal(t, naming.Scheme{DigitWidth: 2, Separator: " - "}, scheme)
	require.Equal(t, 3, next)
}

func TestDetectSchemeIgnoresUnprefixedNames(t *testing.T) {
	scheme, next := naming.DetectScheme([]string{"kick.wav", "07_fill.wav", "1234_not_a_prefix.wav"})
	require.Equal(t, naming.Scheme{DigitWidth: 2, Separator: "_"}, scheme)
	require.Equal(t, 8, next)
}

func TestHasNumericPrefix(t *testing.T) {
	for name, want := range map[string]bool{
		"01_kick.wav":       true,
		"7-snare.wav":       true,
		"03.hat.wav":        true,
		"12 clap.wav":       true,
		"04 - break.wav":    true,
		"kick.wav":          false,
		"1234_too_wide.wav": false,
		"01_":               false, // nothing after the separator
		"05__pad.wav":       false, // separator followed by a separator
		"":                  false,
	} {
		require.Equal(t, want, naming.HasNumericPrefix(name), "name: %q", name)
	}
}

func TestApplyPrefix(t *testing.T) {
	s := naming.Scheme{DigitWidth: 2, Separator: "_"}
	require.Equal(t, "04_kick.wav", naming.ApplyPrefix("kick.wav", 4, s))
	require.Equal(t, "112_kick.wav", naming.ApplyPrefix("kick.wav", 112, s))

	s = naming.Scheme{DigitWidth: 3, Separator: " - "}
	require.Equal(t, "007 - kick.wav", naming.ApplyPrefix("kick.wav", 7, s))
}

func TestApplyPrefixIsNoOpOnPrefixedNames(t *testing.T) {
	s := naming.Scheme{DigitWidth: 2, Separator: "_"}

	require.Equal(t, "01_kick.wav", naming.ApplyPrefix("01_kick.wav", 9, s))

	// A foreign scheme's prefix still counts as a prefix.
	require.Equal(t, "7-kick.wav", naming.ApplyPrefix("7-kick.wav", 9, s))
}
