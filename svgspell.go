// Package svgspell provides an interactive spell checker for the text of SVG
// drawings. It extracts text fragments from the document, submits each word
// to an external line-oriented checker process, and lets an operator correct
// flagged fragments before the document is written back.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, ispell/, lru/).
package svgspell
