package pattern

import "github.com/axgraph/callgraph/csr"

// FindPatterns dispatches to the named detector. params supplies the
// detector-specific numeric argument: minCallees for god_class, k for
// circular_dependency; dead_code takes none. Any other name fails with
// ErrPatternUnsupported — a generic subgraph-isomorphism matcher is
// declared not supported.
func FindPatterns(g *csr.Graph, name string, params ...int) ([]Match, error) {
	switch name {
	case NameGodClass:
		minCallees := 1
		if len(params) > 0 {
			minCallees = params[0]
		}
		return GodClass(g, minCallees), nil
	case NameCircularDependency:
		k := 3
		if len(params) > 0 {
			k = params[0]
		}
		return CircularDependency(g, k), nil
	case NameDeadCode:
		return DeadCode(g), nil
	default:
		return nil, ErrPatternUnsupported
	}
}
