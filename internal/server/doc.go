// Package server exposes the editing pipeline to the browser UI over
// socket.io. Each connected client gets its own session: an in-memory text
// buffer, a parser bound to the shared language, and a document
// synchronizer whose publishes are forwarded to the client as "markers" and
// "components" events. Structured edit intents ("component/insert",
// "component/replace") flow back through the patch synthesizer, mutate the
// session buffer and re-trigger the pipeline.
package server
