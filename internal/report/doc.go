// Package report renders the markdown comparison artifact.
//
// The artifact is created fresh each run and grows by append-only section
// writes: title, prompt, one section per provider outcome in configuration
// order, and a fixed discussion scaffold for hand-written analysis.
package report
