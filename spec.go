package cli

import (
	"strings"
)

// Spec declares one command line option as a tuple: leading strings that
// start with "-" are the switches, the next plain strings are the doc lines,
// and the remainder is alternating Keyword/value pairs.
//
//	cli.Spec{"-p", "--port", "Listen on this port", cli.KeyDefault, 8080, cli.KeyParse, cli.ToInt}
type Spec []interface{}

// Keyword tags an explicit override in a Spec tuple.
type Keyword string

const (
	// KeyDefault declares an initial value for the option.
	KeyDefault Keyword = "default"

	// KeyParse declares a ParseFunc that transforms the raw token of a
	// value option. Never invoked for flag options.
	KeyParse Keyword = "parse"

	// KeyFlag overrides flag detection. A true value makes the option a
	// boolean toggle even without a [no-] marker; false forces a value
	// option.
	KeyFlag Keyword = "flag"

	// KeyAssign declares an AssignFunc that places parsed values into the
	// result mapping, replacing plain key insertion.
	KeyAssign Keyword = "assign"

	// KeyRequired marks an option that must appear on the command line.
	KeyRequired Keyword = "required"
)

// ParseFunc transforms the raw string token of a value option.
type ParseFunc func(s string) (interface{}, error)

// AssignFunc places a parsed value into the result mapping under the
// option's canonical name.
type AssignFunc func(opts map[string]interface{}, name string, value interface{})

// Append is an AssignFunc that accumulates repeated values in a
// []interface{} slice instead of overwriting the previous one.
func Append(opts map[string]interface{}, name string, value interface{}) {
	prev, _ := opts[name].([]interface{})
	opts[name] = append(prev, value)
}

// insert is the default AssignFunc: plain key insertion.
func insert(opts map[string]interface{}, name string, value interface{}) {
	opts[name] = value
}

// identity is the default ParseFunc: the raw token unchanged.
func identity(s string) (interface{}, error) {
	return s, nil
}

// option represents one compiled command line option
type option struct {
	switches   []string // literal tokens recognized on the command line, expanded for negatable flags
	aliases    []string // canonical names stripped from the original switches
	name       string   // the last alias, used as the key in the result mapping
	doc        string
	flag       bool // true if the option is a boolean toggle with no value token
	required   bool
	hasDefault bool
	def        interface{}
	parse      ParseFunc
	assign     AssignFunc
}

// firstSwitch returns the switch used to name this option in messages.
func (o *option) firstSwitch() string {
	if len(o.switches) > 0 {
		return o.switches[0]
	}
	return o.name
}

// noMarker declares a negatable flag, as in "--[no-]verbose".
const noMarker = "[no-]"

// isSwitch returns true if a spec element is a switch literal such as "-p"
// or "--port".
func isSwitch(s string) bool {
	return strings.HasPrefix(s, "-")
}

// aliasOf strips the option prefix from a switch literal to obtain its
// canonical name. Prefixes are tried longest first so that "--no-verbose"
// and "--[no-]verbose" both yield "verbose".
func aliasOf(sw string) string {
	for _, prefix := range []string{"--no-", "--" + noMarker, "--", "-"} {
		if strings.HasPrefix(sw, prefix) {
			return strings.TrimPrefix(sw, prefix)
		}
	}
	return sw
}

// normalizeSwitches expands the declared switches of a flag option into the
// literal tokens the matcher recognizes. A [no-] marker expands into the
// negative form followed by the positive form; absent a marker, every long
// switch gains a synthetic "--no-" counterpart. Non-flag switches pass
// through unchanged.
func normalizeSwitches(switches []string, flag bool) []string {
	if !flag {
		return switches
	}

	marked := false
	for _, sw := range switches {
		if strings.Contains(sw, noMarker) {
			marked = true
			break
		}
	}

	var out []string
	for _, sw := range switches {
		switch {
		case strings.Contains(sw, noMarker):
			out = append(out, strings.Replace(sw, noMarker, "no-", 1), strings.Replace(sw, noMarker, "", 1))
		case !marked && strings.HasPrefix(sw, "--"):
			out = append(out, sw, "--no-"+aliasOf(sw))
		default:
			out = append(out, sw)
		}
	}
	return out
}

// compileSpec builds one option record from a declarative tuple. Compilation
// is best-effort: malformed elements are skipped, never reported.
func compileSpec(tuple Spec) *option {
	rest := []interface{}(tuple)

	// greedily consume the leading switch literals
	var switches []string
	for len(rest) > 0 {
		s, ok := rest[0].(string)
		if !ok || !isSwitch(s) {
			break
		}
		switches = append(switches, s)
		rest = rest[1:]
	}

	// then the doc lines, in practice zero or one
	var docs []string
	for len(rest) > 0 {
		s, ok := rest[0].(string)
		if !ok {
			break
		}
		docs = append(docs, s)
		rest = rest[1:]
	}

	opt := option{
		parse:  identity,
		assign: insert,
	}
	if len(docs) > 0 {
		opt.doc = docs[0]
	}

	opt.aliases = make([]string, len(switches))
	for i, sw := range switches {
		opt.aliases[i] = aliasOf(sw)
	}
	if len(opt.aliases) > 0 {
		opt.name = opt.aliases[len(opt.aliases)-1]
	}

	// a [no-] marker on the last switch implies a flag unless an explicit
	// KeyFlag override says otherwise
	flag := len(switches) > 0 && strings.Contains(switches[len(switches)-1], noMarker)

	for len(rest) > 0 {
		key, ok := rest[0].(Keyword)
		if !ok || len(rest) < 2 {
			rest = rest[1:]
			continue
		}
		val := rest[1]
		rest = rest[2:]

		switch key {
		case KeyDefault:
			opt.def = val
			opt.hasDefault = true
		case KeyParse:
			if fn := asParseFunc(val); fn != nil {
				opt.parse = fn
			}
		case KeyFlag:
			if b, ok := val.(bool); ok {
				flag = b
			}
		case KeyAssign:
			if fn := asAssignFunc(val); fn != nil {
				opt.assign = fn
			}
		case KeyRequired:
			if b, ok := val.(bool); ok {
				opt.required = b
			}
		}
		// unrecognized keywords are skipped along with their values
	}

	opt.flag = flag
	opt.switches = normalizeSwitches(switches, flag)

	// flags always carry a default; an explicit KeyDefault wins
	if opt.flag && !opt.hasDefault {
		opt.def = false
		opt.hasDefault = true
	}

	return &opt
}

func asParseFunc(v interface{}) ParseFunc {
	switch fn := v.(type) {
	case ParseFunc:
		return fn
	case func(string) (interface{}, error):
		return fn
	}
	return nil
}

func asAssignFunc(v interface{}) AssignFunc {
	switch fn := v.(type) {
	case AssignFunc:
		return fn
	case func(map[string]interface{}, string, interface{}):
		return fn
	}
	return nil
}
