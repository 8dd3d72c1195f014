// Package report renders extracted model entries.
//
// This package contains writers for the supported output formats:
//   - TextWriter: "<identifier>:<category>" per line, duplicates kept
//   - JSONWriter: an identifier to category object, duplicates collapsed
//   - NSDictWriter: an Objective-C dictionary literal, duplicates kept
//   - MarkdownWriter: a per-family summary document
//
// Writers implement the Writer interface, so they can be chosen at runtime
// with NewWriter and combined with MultiWriter.
package report
