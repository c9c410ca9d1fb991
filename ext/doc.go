// Package ext holds the generated extension sets and their supporting
// runtime types.
//
// InstanceExtensions and DeviceExtensions are generated by vkcapgen
// from the Vulkan registry; everything else in this package is
// hand-written support: the Version ordinal, the ValidationError
// returned by the generated validators, and the Requires alternatives
// it carries.
//
// Sets are plain values. Construct one with the FromNames constructor
// or by setting fields directly, then treat it as immutable: the
// algebra operations (Union, Intersection, Difference) return new
// values and nothing ever mutates a set after construction, so sets
// are safe to copy and share freely.
package ext
