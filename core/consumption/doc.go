// Package consumption reconstructs fuel and energy consumption from sparse
// vehicle telemetry. Tank level is only intermittently known: some refuels
// carry a filled-to-full flag, some rows carry a rough gauge fraction, most
// carry nothing. The pipeline groups points per vehicle and tank, derives a
// tank level where one can be derived, applies a conservation equation
// between the first and last known levels, falls back to refuel spacing
// when no anchors exist, and folds everything into one summary per fuel
// type. Every figure carries a confidence tier and the reasons behind it;
// degenerate input produces an empty or zero-valued report, never an error.
package consumption
