package tsp

// WithExactCapability overrides the compiled-in exact capability so tests can
// exercise the heuristic-only configuration without the noexact build tag.
var WithExactCapability = withExactCapability
