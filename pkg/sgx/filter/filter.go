package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Filter matches a watchlist row by ticker or display name.
type Filter interface {
	Match(value string) bool
}

// Parse builds a filter from an expression:
// - Comma-separated exact tickers: "D05.SI,Z74.SI"
// - Glob: "D*"
// - Regex: "/^[DU]/"
// - Anything else: case-insensitive substring match
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always(true), nil
	}
	if strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") && len(expr) > 2 {
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, err
		}
		return Regex{re: re}, nil
	}
	if strings.Contains(expr, ",") {
		parts := strings.Split(expr, ",")
		set := map[string]struct{}{}
		for _, p := range parts {
			p = strings.ToUpper(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			set[p] = struct{}{}
		}
		return ExactSet{set: set}, nil
	}
	if strings.ContainsAny(expr, "*?") {
		return Glob{pattern: strings.ToUpper(expr)}, nil
	}
	return SubstrCI{needle: expr}, nil
}

type Always bool

func (a Always) Match(string) bool { return bool(a) }

type ExactSet struct{ set map[string]struct{} }

func (e ExactSet) Match(value string) bool {
	_, ok := e.set[strings.ToUpper(value)]
	return ok
}

type Glob struct{ pattern string }

func (g Glob) Match(value string) bool {
	ok, _ := filepath.Match(g.pattern, strings.ToUpper(value))
	return ok
}

func (g Glob) String() string { return fmt.Sprintf("glob:%s", g.pattern) }

type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(value string) bool { return r.re.MatchString(value) }

// SubstrCI matches if value contains needle, case-insensitively.
type SubstrCI struct{ needle string }

func (s SubstrCI) Match(value string) bool {
	if s.needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(s.needle))
}

func (s SubstrCI) String() string { return fmt.Sprintf("substr-ci:%s", s.needle) }
