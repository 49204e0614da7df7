package names

import "artifactgen/internal/pick"

var serviceTemplates = []string{
	"{vendor}{component}{suffix}",
	"{vendor}{suffix}",
	"{component}{suffix}",
	"svc{component}",
}

// ServiceNames composes plausible Windows service names. No extension.
type ServiceNames struct {
	Vendors    []string
	Components []string
	Suffixes   []string
}

func DefaultServiceNames() ServiceNames {
	return ServiceNames{
		Vendors:    defaultVendors,
		Components: defaultComponents,
		Suffixes:   defaultServiceSuffixes,
	}
}

func (g ServiceNames) Generate(rng pick.Source) (string, error) {
	for category, vocab := range map[string][]string{
		"vendor":    g.Vendors,
		"component": g.Components,
		"suffix":    g.Suffixes,
	} {
		if err := requireVocab(category, vocab); err != nil {
			return "", err
		}
	}
	return Compose(rng, serviceTemplates, map[string]Supplier{
		"vendor":    word(rng, g.Vendors),
		"component": word(rng, g.Components),
		"suffix":    word(rng, g.Suffixes),
	})
}
