// Package redact masks credential-shaped strings before they reach the
// report artifact or the console. Provider error bodies sometimes quote the
// request back, API key included; everything error-shaped passes through
// [Secrets] on its way out.
package redact
