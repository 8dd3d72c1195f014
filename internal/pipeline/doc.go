// Package pipeline runs the devicemodels stages in sequence.
//
// A run is fetch, extract, render. Each stage is a Step that receives the
// shared model.Catalog and fills in its part of it. A step may mark the
// catalog as halted (the wiki answered with a non-200 status), in which case
// the remaining steps are skipped and the run still succeeds.
package pipeline
