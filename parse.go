// Package cli parses command line arguments from declarative option specs.
//
// Each option is declared as a Spec tuple of switch literals, an optional doc
// string, and Keyword/value overrides. Parsing a raw argument vector against
// a list of specs yields the parsed option values keyed by canonical name,
// the unmatched positional arguments in encounter order, and a formatted
// usage banner.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/agilira/go-errors"
)

// Result holds everything one parse invocation produces.
type Result struct {
	Options   map[string]interface{}
	Leftovers []string
	Banner    string
}

// Parser holds the compiled option records for one list of specs. A Parser
// is immutable after construction and safe for concurrent use.
type Parser struct {
	opts []*option
}

// NewParser compiles the given specs into option records. Compilation is
// best-effort: malformed tuples are never rejected, and overlapping switch
// literals resolve to the first declared match.
func NewParser(specs ...Spec) *Parser {
	p := Parser{opts: make([]*option, 0, len(specs))}
	for _, s := range specs {
		p.opts = append(p.opts, compileSpec(s))
	}
	return &p
}

// Parse compiles specs and processes args against them, returning the parsed
// options, the leftover positional arguments, and the usage banner.
func Parse(args []string, specs ...Spec) (*Result, error) {
	p := NewParser(specs...)
	opts, leftovers, err := p.Parse(args)
	if err != nil {
		return nil, err
	}
	return &Result{Options: opts, Leftovers: leftovers, Banner: p.Banner()}, nil
}

// MustParse processes the process argument vector and exits upon failure,
// printing the banner to stdout for -h/--help and to stderr otherwise.
func MustParse(specs ...Spec) *Result {
	p := NewParser(specs...)
	opts, leftovers, err := p.Parse(flags())
	if err == ErrHelp {
		p.WriteBanner(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		p.Fail(err.Error())
	}
	return &Result{Options: opts, Leftovers: leftovers, Banner: p.Banner()}
}

// flags gets all command line arguments other than the first (program name)
func flags() []string {
	if len(os.Args) == 0 { // os.Args could be empty
		return nil
	}
	return os.Args[1:]
}

// defaults builds the initial options mapping from every record carrying a
// default, inserted through the record's own assign function.
func (p *Parser) defaults() map[string]interface{} {
	m := make(map[string]interface{})
	for _, opt := range p.opts {
		if opt.hasDefault {
			opt.assign(m, opt.name, opt.def)
		}
	}
	return m
}

// splitLongOption splits a GNU-style "--name=value" token into its name and
// value parts. Tokens with a space before the equals sign do not qualify.
func splitLongOption(tok string) (name, value string, ok bool) {
	if !strings.HasPrefix(tok, "--") {
		return "", "", false
	}
	eq := strings.IndexByte(tok, '=')
	if eq <= 2 || strings.ContainsRune(tok[:eq], ' ') {
		return "", "", false
	}
	return tok[:eq], tok[eq+1:], true
}

// match identifies the option record for the leading token. GNU-style
// "--name=value" tokens are split into separate name and value tokens, and
// the returned stream is what the argument loop consumes next. The search is
// linear so that the first declared record wins.
func (p *Parser) match(rem []string) (key string, stream []string, opt *option) {
	key = rem[0]
	stream = rem
	if name, value, ok := splitLongOption(key); ok {
		key = name
		stream = append([]string{name, value}, rem[1:]...)
	}
	for _, o := range p.opts {
		for _, sw := range o.switches {
			if sw == key {
				return key, stream, o
			}
		}
	}
	return key, stream, nil
}

// Parse processes args against the compiled specs. On failure no partial
// mapping is returned.
func (p *Parser) Parse(args []string) (map[string]interface{}, []string, error) {
	opts := p.defaults()
	var leftovers []string
	seen := make(map[*option]bool)

	rem := args
	for len(rem) > 0 {
		// everything after "--" is positional, even option-shaped tokens
		if rem[0] == "--" {
			leftovers = append(leftovers, rem[1:]...)
			break
		}

		key, stream, opt := p.match(rem)
		switch {
		case opt == nil && (key == "-h" || key == "--help"):
			return nil, nil, ErrHelp
		case opt == nil && strings.HasPrefix(key, "-"):
			return nil, nil, errors.New(ErrCodeInvalidArgument, "unknown argument '"+key+"'")
		case opt == nil:
			leftovers = append(leftovers, key)
			rem = stream[1:]
		case opt.flag:
			// the literal token that matched decides the direction
			opt.assign(opts, opt.name, !strings.HasPrefix(key, "--no-"))
			seen[opt] = true
			rem = stream[1:]
		default:
			if len(stream) < 2 {
				return nil, nil, errors.New(ErrCodeMissingValue, "missing value for '"+key+"'")
			}
			raw := stream[1]
			value, err := opt.parse(raw)
			if err != nil {
				return nil, nil, errors.Wrap(err, ErrCodeInvalidValue,
					fmt.Sprintf("cannot parse value '%s' for '%s'", raw, key))
			}
			opt.assign(opts, opt.name, value)
			seen[opt] = true
			rem = stream[2:]
		}
	}

	for _, opt := range p.opts {
		if opt.required && !seen[opt] {
			return nil, nil, errors.New(ErrCodeRequired, "'"+opt.firstSwitch()+"' is required")
		}
	}

	return opts, leftovers, nil
}
