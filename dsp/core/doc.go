// Package core holds small numeric and buffer helpers shared by the engine,
// the meters and the command-line tools.
package core
