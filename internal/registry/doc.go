// Package registry holds the schema descriptors for known component kinds.
// Schemas are authored as HCL manifest files and loaded once at startup;
// the resulting Registry is read-only input to the diagnostics extractor.
// A kind with no registry entry is "unknown", which is advisory, never
// fatal: the editor keeps working on documents full of kinds it has no
// schema for.
package registry
