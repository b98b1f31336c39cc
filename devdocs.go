// Package devdocs provides an AI-assisted documentation browser. It loads
// markdown topics, renders a markdown subset to HTML, filters topics and
// sections by tags, searches locally and asks a hosted LLM to answer
// questions, explain text or generate code samples.
//
// This package contains domain types, pure content functions and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., fs/, gemini/,
// sqlite/, http/).
package devdocs
