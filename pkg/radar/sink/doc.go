// Package sink renders an assembled chart into output formats: SVG
// (the native drawing), PNG and PDF (conversions via librsvg), JSON
// (the serialized layout), and CSV (the source data in spreadsheet
// form).
package sink
