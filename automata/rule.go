package automata

import (
	"strconv"
	"strings"

	"github.com/tessellate-go/forma/neighbourhood"
)

// Rule pairs a Neighbourhood with its birth (B) and survival (S) count
// sets, parsed from a "B.../S..." string.
type Rule struct {
	N    neighbourhood.Neighbourhood
	B, S map[int]struct{}
}

// RuleSet is a conjunction of Rules: a cell's next state must satisfy
// every rule in the set simultaneously.
type RuleSet []Rule

// ParseRule parses a "B<digits>/S<digits>" rule string against
// neighbourhood n. Each digit is a neighbour-count threshold and must lie
// in [0, n.Size()]. Malformed strings return ErrInvalidRule.
func ParseRule(s string, n neighbourhood.Neighbourhood) (Rule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Rule{}, ErrInvalidRule
	}
	bPart, sPart := parts[0], parts[1]
	if !strings.HasPrefix(bPart, "B") || !strings.HasPrefix(sPart, "S") {
		return Rule{}, ErrInvalidRule
	}

	b, err := parseDigitSet(bPart[1:], n.Size())
	if err != nil {
		return Rule{}, err
	}
	sSet, err := parseDigitSet(sPart[1:], n.Size())
	if err != nil {
		return Rule{}, err
	}

	return Rule{N: n, B: b, S: sSet}, nil
}

func parseDigitSet(digits string, max int) (map[int]struct{}, error) {
	set := make(map[int]struct{}, len(digits))
	for _, r := range digits {
		v, err := strconv.Atoi(string(r))
		if err != nil || v < 0 || v > max {
			return nil, ErrInvalidRule
		}
		set[v] = struct{}{}
	}
	return set, nil
}
