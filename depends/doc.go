// Package depends parses Vulkan extension dependency expressions.
//
// The registry encodes the requirements of an extension as a small
// expression language over extension names and core version tokens:
//
//   - ',' separates alternatives (OR, lowest precedence)
//   - '+' joins requirements (AND, higher precedence)
//   - parentheses group sub-expressions
//
// Parsing normalizes an expression into disjunctive normal form: an
// [AnyOf] listing every alternative, each alternative an [AllOf] holding
// a version floor and the extensions that must all be enabled. For
// example:
//
//	requires, err := depends.Parse("(VK_KHR_a,VK_KHR_b)+VK_KHR_c")
//	// requires == AnyOf{{VK_KHR_a, VK_KHR_c}, {VK_KHR_b, VK_KHR_c}}
//
// An empty expression is not valid input; an extension with no depends
// attribute simply has a nil AnyOf.
package depends
