// Package config resolves a search.SolverConfig by layering an optional
// YAML file under CLI flags bound through viper: flags explicitly set on
// the command line always win over the file, and the file wins over
// search.DefaultConfig.
//
// This package is the out-of-scope "configuration loading" collaborator
// made concrete; the search package never imports it, and nothing here
// reaches back into search beyond its exported SolverConfig type.
//
// Errors: Load wraps ErrConfigLoad for an unreadable or malformed file, or
// flag binding failures.
package config
