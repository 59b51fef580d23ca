// Package pkg provides the core libraries for techradar chart rendering.
//
// # Overview
//
// Techradar turns a flat list of technology assessments into a radar
// chart: items placed on concentric maturity rings within category
// sections, with deterministic, overlap-free placement. The pkg
// directory is organized into five main areas:
//
//  1. [radar] - Domain logic (taxonomy, layout engine, chart assembly, sinks)
//  2. [source] - Dataset loading (CSV/TSV files, built-in sample)
//  3. [cache] - Content-addressed caching of layouts and artifacts
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [render] - SVG-to-PNG/PDF conversion
//
// # Architecture
//
// The typical data flow through techradar:
//
//	CSV/TSV dataset
//	         ↓
//	    [source/csvfile] package (parse + validate items)
//	         ↓
//	    [radar/layout] package (seeded placement + collision relaxation)
//	         ↓
//	    [radar/chart] + [radar/sink] packages (assembly + serialization)
//	         ↓
//	    SVG/PNG/PDF/JSON/CSV output
//
// Supporting packages: [errors] for coded errors, [observability] for
// pipeline and cache hooks, [buildinfo] for version stamping.
package pkg
