// Package audit implements the project readiness checklist used by the
// certivox CLI.
//
// It exposes NewCatalog for constructing the ordered check catalog from
// explicit configuration, Service for driving a full evaluation
// programmatically, and the aggregation and verdict helpers consumed by
// deployment gating.
package audit
