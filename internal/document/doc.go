// Package document owns the authoritative parse-extract-diagnose pipeline
// for one text buffer. On every text change it reparses the full document,
// re-derives the component list and the marker set, and publishes both to
// its subscribers. The buffer is the single source of truth: nothing the
// synchronizer holds survives a reparse, and a newer trigger always
// supersedes an in-flight cycle (last write wins).
package document
