package facet

// Version is the facets library version, shown by the prism CLI.
const Version = "0.1.0"
