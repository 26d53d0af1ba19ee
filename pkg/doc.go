// Package pkg provides the core libraries for plotkit.
//
// # Overview
//
// Plotkit groups the tooling around plotting workflows into small,
// composable packages:
//
//  1. [layout] - Grid arrangement planning for sets of plots
//  2. [figure] - SVG figure rendering on top of planned grids
//  3. [griddiag] - Grid diagram grammar, parsing, and SVG/PNG export
//  4. [datagen] - Synthetic dataset and statistics generation
//  5. [gitlab] / [export] - GitLab issue fetching and file export
//
// Supporting packages handle the ambient concerns: [cache] for HTTP
// response caching with retry, [errors] for machine-readable error
// codes, and [buildinfo] for version stamping.
//
// # Architecture
//
// The typical flow for figures:
//
//	plots → layout.PlanGrid → figure.Figure.Render → SVG
//
// and for grid diagrams:
//
//	diagram file → griddiag.Parser → sink.Exporter → SVG/PNG
//
// Data generation feeds plotting experiments: datagen writes CSV
// datasets and statistics that figures visualize.
package pkg
