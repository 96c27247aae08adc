// Package triage provides the business boundary for PetVet Assist's symptom
// triage system. It defines the Service (facade: IDs, logging, tracing,
// metric hooks), Engine (pure extract/assess/recommend pipeline), the domain
// enums, and the Result record.
package triage
