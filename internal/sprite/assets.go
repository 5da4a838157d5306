package sprite

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed assets/*.entity
var assetFS embed.FS

// Builtin loads a sprite from the embedded set by bare name, e.g.
// "bird_0" for assets/bird_0.entity.
func Builtin(name string) (View, error) {
	data, err := assetFS.ReadFile("assets/" + name + ".entity")
	if err != nil {
		return View{}, fmt.Errorf("sprite: no builtin %q: %w", name, err)
	}
	v, err := Parse(data)
	if err != nil {
		return View{}, fmt.Errorf("sprite: builtin %q: %w", name, err)
	}
	return v, nil
}

// BuiltinNames lists the embedded sprite names, sorted.
func BuiltinNames() []string {
	entries, err := assetFS.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".entity"))
	}
	sort.Strings(names)
	return names
}
