// Package cmd implements the pgloader CLI commands: parse (validate a load
// command file), fmt (canonical formatting), and run (execute with the
// built-in loaders).
package cmd
