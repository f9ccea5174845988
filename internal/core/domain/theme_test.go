package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/iconic/internal/core/domain"
)

func themeNode(name string, parents ...*domain.Theme) *domain.Theme {
	t := domain.NewTheme(domain.NewThemeDescription(name, nil))
	t.Parents = parents
	return t
}

func traversalNames(t *domain.Theme) []string {
	var names []string
	for node := range t.Traverse() {
		names = append(names, node.Name)
	}
	return names
}

func TestNewThemeDescription_BaseThemeInjection(t *testing.T) {
	tests := []struct {
		name        string
		theme       string
		parents     []string
		wantParents []string
	}{
		{"no parents", "Adwaita", nil, []string{"hicolor"}},
		{"appended after declared parents", "Foo", []string{"Bar"}, []string{"Bar", "hicolor"}},
		{"already present", "Foo", []string{"hicolor", "Bar"}, []string{"hicolor", "Bar"}},
		{"hicolor itself", "hicolor", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := domain.NewThemeDescription(tt.theme, tt.parents)
			assert.Equal(t, tt.wantParents, desc.Parents)
		})
	}
}

func TestTheme_Traverse(t *testing.T) {
	t.Run("theme before ancestors, declared order", func(t *testing.T) {
		base := themeNode("hicolor")
		mid := themeNode("mid", base)
		other := themeNode("other", base)
		root := themeNode("root", mid, other)

		assert.Equal(t, []string{"root", "mid", "hicolor", "other"}, traversalNames(root))
	})

	t.Run("diamond visits shared ancestor once", func(t *testing.T) {
		base := themeNode("hicolor")
		left := themeNode("left", base)
		right := themeNode("right", base)
		root := themeNode("root", left, right)

		assert.Equal(t, []string{"root", "left", "hicolor", "right"}, traversalNames(root))
	})

	t.Run("cycle terminates", func(t *testing.T) {
		a := themeNode("a")
		b := themeNode("b", a)
		a.Parents = []*domain.Theme{b}

		assert.Equal(t, []string{"a", "b"}, traversalNames(a))
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		base := themeNode("hicolor")
		root := themeNode("root", base)

		var seen []string
		for node := range root.Traverse() {
			seen = append(seen, node.Name)
			break
		}
		assert.Equal(t, []string{"root"}, seen)
	})
}

func TestTheme_AddIcon(t *testing.T) {
	theme := themeNode("Foo")
	d1 := domain.NewDirectoryDescriptor("32x32/apps", 32)
	d2 := domain.NewDirectoryDescriptor("48x48/apps", 48)

	theme.AddIcon("bar.png", "/usr/share/icons/Foo/32x32/apps", d1)
	theme.AddIcon("bar.png", "/usr/share/icons/Foo/48x48/apps", d2)

	files := theme.Icons["bar.png"]
	assert.Len(t, files, 2)
	assert.Equal(t, "/usr/share/icons/Foo/32x32/apps", files[0].Dir)
	assert.Equal(t, 48, files[1].Descriptor.Size)
}
