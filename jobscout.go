// Package jobscout discovers job-posting URLs from company careers pages.
// Given a seed URL it retrieves page content through ordered retrieval
// strategies (plain HTTP first, full browser render as fallback), extracts
// candidate links from anchors, JSON-LD blocks, and JSON payloads sniffed
// from background network traffic, classifies each candidate, and returns
// a deduplicated sorted list of absolute job URLs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, rod/, goquery/, sqlite/);
// orchestration lives in scrape/.
package jobscout
