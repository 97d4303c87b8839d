// Package providers implements the Generator interface for each supported
// text-generation service.
//
// Supported providers: OpenAI (chat completions), Anthropic (messages), and
// the Hugging Face inference API.
//
// Every call is a single synchronous POST bounded by the client timeout; all
// failures, HTTP and transport alike, surface as *ProviderError so callers
// have one shape to classify. Base URLs are injectable so that tests can
// redirect calls to local httptest servers without making live API requests.
//
// Use [Registry] for the ordered provider list and [New] to build a client
// from per-provider options.
package providers
