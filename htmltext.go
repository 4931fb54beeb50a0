// Package htmltext extracts article-like text from raw HTML without a DOM
// or layout engine. A cleaning pass removes configured elements from the
// token stream, a splitting pass breaks the document into contiguous
// chunks, and each chunk is scored by how text-heavy vs. link-heavy it is.
// Chunks above a configurable weight threshold make it into the output;
// the text of designated "save" tags (titles, headings) is captured into a
// side-channel in document order.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., tokenizer/, goquery/, bloom/).
package htmltext
