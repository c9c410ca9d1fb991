// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package depends

// AllOf is a single alternative of a dependency expression: the target
// must run at least APIVersion (when set) and have every extension in
// Extensions enabled.
type AllOf struct {
	// APIVersion is the minimum core minor version, or nil when the
	// alternative carries no version floor.
	APIVersion *uint32

	// Extensions lists the names of extensions that must all be enabled.
	Extensions []string
}

// AnyOf is a dependency expression in disjunctive normal form. It is
// satisfied when any one of its alternatives is satisfied. A nil or
// empty AnyOf means "no dependency".
type AnyOf []AllOf

// versionTokens maps the registry's core version tokens to minor
// version ordinals.
var versionTokens = map[string]uint32{
	"VK_VERSION_1_0": 0,
	"VK_VERSION_1_1": 1,
	"VK_VERSION_1_2": 2,
	"VK_VERSION_1_3": 3,
	"VK_VERSION_1_4": 4,
	"VK_VERSION_1_5": 5,
	"VK_VERSION_1_6": 6,
}

// Parse parses a dependency expression into disjunctive normal form.
//
// The input must be a complete, well-formed expression; the registry is
// trusted and there is no error recovery. Any syntax error aborts with
// a [*ParseError] carrying the raw input and offset.
func Parse(input string) (AnyOf, error) {
	p := &parser{input: input}

	anyOf, err := p.parse()
	if err != nil {
		return nil, err
	}

	// A balanced expression consumes the whole input. Anything left
	// over is a stray closing parenthesis.
	if p.pos != len(p.input) {
		return nil, p.errorf("unexpected %q", p.input[p.pos])
	}

	return anyOf, nil
}

// parser is a cursor over the raw expression. The grammar is parsed by
// recursive descent directly over the string; there is no separate
// tokenization pass.
type parser struct {
	input string
	pos   int
}

// parse parses one expression, stopping at a closing parenthesis or the
// end of input. On return the cursor sits on the first unconsumed byte.
//
// Grammar, with ',' binding loosest:
//
//	expr   := term (',' term)*
//	term   := factor ('+' factor)*
//	factor := '(' expr ')' | atom
func (p *parser) parse() (AnyOf, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.peek() == ',' {
		p.pos++

		rhs, err := p.term()
		if err != nil {
			return nil, err
		}

		// OR is associative concatenation of alternative lists.
		lhs = append(lhs, rhs...)
	}

	return lhs, nil
}

// term parses a '+'-joined run of factors, folding each factor into the
// accumulated disjunction by distribution.
func (p *parser) term() (AnyOf, error) {
	lhs, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.peek() == '+' {
		p.pos++

		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}

		lhs = distribute(lhs, rhs)
	}

	return lhs, nil
}

// factor parses a parenthesized group or a single atom.
func (p *parser) factor() (AnyOf, error) {
	if p.peek() != '(' {
		atom, err := p.atom()
		if err != nil {
			return nil, err
		}
		return AnyOf{atom}, nil
	}

	p.pos++ // consume '('

	inner, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.peek() != ')' {
		return nil, p.errorf("missing closing parenthesis")
	}
	p.pos++ // consume ')'

	return inner, nil
}

// atom consumes up to the next structural character and resolves the
// slice to either a core version token or an extension name.
func (p *parser) atom() (AllOf, error) {
	start := p.pos
	for p.pos < len(p.input) {
		if c := p.input[p.pos]; c == ')' || c == ',' || c == '+' {
			break
		}
		p.pos++
	}

	name := p.input[start:p.pos]
	if name == "" {
		return AllOf{}, p.errorf("empty operand")
	}

	if version, ok := versionTokens[name]; ok {
		return AllOf{APIVersion: &version}, nil
	}

	return AllOf{Extensions: []string{name}}, nil
}

// peek returns the byte under the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// distribute applies AND over two disjunctions, producing the DNF
// product: one alternative per pair of input alternatives, with merged
// version floors and concatenated extension lists.
func distribute(lhs, rhs AnyOf) AnyOf {
	options := make(AnyOf, 0, len(lhs)*len(rhs))

	for _, l := range lhs {
		for _, r := range rhs {
			extensions := make([]string, 0, len(l.Extensions)+len(r.Extensions))
			extensions = append(extensions, l.Extensions...)
			extensions = append(extensions, r.Extensions...)

			options = append(options, AllOf{
				APIVersion: mergeFloor(l.APIVersion, r.APIVersion),
				Extensions: extensions,
			})
		}
	}

	return options
}

// mergeFloor combines the version floors of two ANDed alternatives. An
// absent floor means "unconstrained", so the result is the higher of
// the present floors, or nil when neither side has one.
func mergeFloor(lhs, rhs *uint32) *uint32 {
	switch {
	case lhs == nil:
		return rhs
	case rhs == nil:
		return lhs
	case *lhs >= *rhs:
		return lhs
	default:
		return rhs
	}
}
