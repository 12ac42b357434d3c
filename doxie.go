// Package doxie aggregates documentation from heterogeneous sources
// (web sites, source-code repositories) into a uniform structured-document
// representation and provides one-shot, non-persistent keyword search over
// the aggregated set. Nothing is stored between invocations: a crawl or
// repository fetch produces documents, a search builds an in-memory index
// over them, answers one query, and discards it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bleve/, http/).
package doxie
