// Package registry extracts extension and format records from the
// Vulkan XML registry (vk.xml).
//
// Extraction is a single forward scan over the XML event stream; the
// document is never materialized as a tree. The scan yields:
//
//   - Extension records: name, instance/device scope, and the resolved
//     dependency requirements (parsed by the depends package)
//   - Format records: block size, texel count, packed width, and
//     per-component bit layout
//
// Records accumulate in a [Builder]; [Builder.Finish] sorts them by
// name, resolves every extension reference against the complete name
// set, and freezes the result into an immutable [Table]. The two-phase
// build exists because dependency expressions may reference extensions
// that appear later in the document; nothing may resolve names before
// the whole registry has been read.
package registry
