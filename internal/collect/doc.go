// Package collect orchestrates the provider calls for one run.
//
// Calls are strictly sequential in registry order so that progress output and
// report appends stay interleaved in a readable way. Every configured
// provider yields exactly one outcome: a missing credential and a failed call
// are recorded results, not skips, so the report never silently omits a
// provider.
package collect
