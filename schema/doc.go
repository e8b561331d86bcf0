// Package schema flattens normalized values into typed field descriptors.
//
// Flatten walks a value produced by normalization and emits one Field per
// leaf, with a dotted path from the fragment root, an inferred primitive
// type, and an example value taken from the input. Map keys are visited in
// sorted order so the output is deterministic for a given value.
package schema
