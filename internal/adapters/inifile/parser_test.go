package inifile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconic/internal/adapters/inifile"
)

const sampleIndexTheme = `[Icon Theme]
Name=Foo
Comment=A test theme
Inherits=Bar, Baz
Directories=32x32/apps,scalable/apps

[32x32/apps]
Size=32
Type=Fixed

[scalable/apps]
Size=128
Type=Scaled
MinSize=16
MaxSize=512
`

func TestParser_Parse(t *testing.T) {
	p := inifile.NewParser()

	sections, err := p.Parse([]byte(sampleIndexTheme))
	require.NoError(t, err)
	require.Len(t, sections, 3)

	t.Run("section order follows the file", func(t *testing.T) {
		assert.Equal(t, "Icon Theme", sections[0].Name)
		assert.Equal(t, "32x32/apps", sections[1].Name)
		assert.Equal(t, "scalable/apps", sections[2].Name)
	})

	t.Run("string values", func(t *testing.T) {
		theme, ok := sections.Find("Icon Theme")
		require.True(t, ok)

		name, ok := theme.Get("Name")
		require.True(t, ok)
		assert.Equal(t, "Foo", string(name))
	})

	t.Run("list values trim whitespace", func(t *testing.T) {
		theme, _ := sections.Find("Icon Theme")
		inherits, _ := theme.Get("Inherits")
		assert.Equal(t, []string{"Bar", "Baz"}, inherits.List(","))
	})

	t.Run("integer values", func(t *testing.T) {
		dir, ok := sections.Find("scalable/apps")
		require.True(t, ok)

		size, ok := dir.Get("MaxSize")
		require.True(t, ok)
		n, ok := size.Int()
		require.True(t, ok)
		assert.Equal(t, 512, n)
	})

	t.Run("non-integer value reports failure", func(t *testing.T) {
		theme, _ := sections.Find("Icon Theme")
		name, _ := theme.Get("Name")
		_, ok := name.Int()
		assert.False(t, ok)
	})

	t.Run("missing section", func(t *testing.T) {
		_, ok := sections.Find("48x48/apps")
		assert.False(t, ok)
	})
}

func TestParser_Parse_Malformed(t *testing.T) {
	p := inifile.NewParser()

	_, err := p.Parse([]byte("[unterminated\nSize=32"))
	assert.Error(t, err)
}

func TestParser_Parse_Empty(t *testing.T) {
	p := inifile.NewParser()

	sections, err := p.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, sections)
}
