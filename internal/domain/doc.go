// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/note).
// This root package holds sentinel errors, validation and persistence error
// types, and domain-level interfaces (Mutation, WriteStager) that application
// services use to stage store writes.
package domain
