// Package cli is the Citylifes command-line client.
//
// Each invocation runs one sub-command against the marketplace API and
// prints the result as indented JSON, for example:
//
//	client -t $TOKEN send u2 "is the flat still available?"
//	client -t $TOKEN sponsored radius 18.52 73.85 10
//	client -t $TOKEN nearby 18.52 73.85
//
// Run "client help" for the full command list.
package cli
