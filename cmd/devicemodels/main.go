// Package main provides the entry point for the devicemodels CLI.
//
// devicemodels fetches The iPhone Wiki "Models" page and prints the Apple
// model identifier to marketing name mapping.
//
// Usage:
//
//	devicemodels          # identifier:name lines
//	devicemodels json     # JSON object
//	devicemodels nsdict   # Objective-C dictionary literal
//
// See --help for all available options.
package main

// main is the entry point for devicemodels.
func main() {
	Execute()
}
