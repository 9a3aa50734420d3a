// Package cardex extracts card data tables from saved wiki pages and JSON
// exports, normalizing both into flat row sets that can be written as CSV,
// XLSX, Markdown or SQLite.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, excelize/).
package cardex
