// Package model defines the data structures shared by the devicemodels packages.
//
// This package contains the following main types:
//   - Entry: A model identifier paired with the section heading it was listed under
//   - Family: The device family pass that produced an entry
//   - Catalog: The state carried through the fetch, extract and render steps
package model
