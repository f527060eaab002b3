// Package facet composes field-access capabilities onto host types.
//
// A Type is assembled once, at definition time, from a Descriptor: a
// name, intent flags, explicit base capabilities, and declared fields.
// Instances of a Type own an ordered field Store, and the capabilities
// composed into the Type decide which operations an instance answers.
//
// Capabilities are stateless values whose identity is their Go type.
// Compose deduplicates intent-selected capabilities against the explicit
// bases by that identity alone: a combined capability such as GetSetDel
// is not recognized as covering the single-concern capabilities it
// bundles, so requesting the item flag alongside a GetSetDel base yields
// both. Operations on instances dispatch by behavior instead, so either
// capability answers keyed access.
//
// Implements: prd004-composition R1, R2, R3, R4.
package facet
