// Command slither is a thin cobra CLI over the search package: it parses a
// puzzle file, loads solver configuration from flags and an optional YAML
// file via internal/config, runs search.Solve, and renders each accepted
// solution as an ASCII dot lattice.
//
// Nothing under search, propagate, heuristic, validate, state, or graph
// imports this package; it is a pure consumer of their exported API.
package main
