// Package dice parses and rolls dice expressions like "2d6+3-1d4+2":
// signed dice groups mixed with signed numeric modifiers.
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/metrics"
)

// Limits on one dice group, guarding against abusive expressions.
const (
	MaxRollsPerGroup = 50
	MaxSides         = 99999
)

var tokenPattern = regexp.MustCompile(`([+-]?\d+[dD]\d+)|([+-]\d+)`)

// Group is one parsed dice group: Sign * (Rolls dice of Sides faces).
type Group struct {
	Rolls int
	Sides int
	Sign  int
}

// Expression is a parsed dice expression.
type Expression struct {
	Groups   []Group
	Modifier int
	Source   string
}

// GroupResult holds the individual die results for one rolled group.
type GroupResult struct {
	Group   Group
	Results []int
}

// RollResult is the outcome of rolling a full expression.
type RollResult struct {
	Expression Expression
	Groups     []GroupResult
	Total      int
}

// Parse tokenizes an expression into dice groups and numeric modifiers.
// Unparseable or out-of-bounds groups are rejected with ErrInvalidDiceExpr.
func Parse(expression string) (*Expression, error) {
	trimmed := strings.ReplaceAll(expression, " ", "")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty expression", domain.ErrInvalidDiceExpr)
	}

	matches := tokenPattern.FindAllStringSubmatch(trimmed, -1)
	parsed := &Expression{Source: trimmed}

	consumed := 0
	for _, match := range matches {
		dicePart, numericPart := match[1], match[2]
		consumed += len(match[0])

		if dicePart != "" {
			sign := 1
			if strings.HasPrefix(dicePart, "-") {
				sign = -1
			}
			unsigned := strings.TrimLeft(dicePart, "+-")
			parts := strings.SplitN(strings.ToLower(unsigned), "d", 2)
			rolls, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDiceExpr, dicePart)
			}
			sides, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDiceExpr, dicePart)
			}
			if rolls <= 0 || sides <= 0 || rolls > MaxRollsPerGroup || sides > MaxSides {
				return nil, fmt.Errorf("%w: %s exceeds limits", domain.ErrInvalidDiceExpr, dicePart)
			}
			parsed.Groups = append(parsed.Groups, Group{Rolls: rolls, Sides: sides, Sign: sign})
			continue
		}

		value, err := strconv.Atoi(numericPart)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDiceExpr, numericPart)
		}
		parsed.Modifier += value
	}

	if len(parsed.Groups) == 0 {
		return nil, fmt.Errorf("%w: no dice groups in %q", domain.ErrInvalidDiceExpr, expression)
	}
	if consumed != len(trimmed) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDiceExpr, expression)
	}

	return parsed, nil
}

// Roll parses and rolls an expression.
func Roll(expression string) (*RollResult, error) {
	parsed, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	return parsed.Roll(), nil
}

// Roll rolls every group and sums the signed results plus the modifier.
func (e *Expression) Roll() *RollResult {
	result := &RollResult{Expression: *e, Total: e.Modifier}

	for _, group := range e.Groups {
		rolled := GroupResult{Group: group, Results: make([]int, group.Rolls)}
		for i := 0; i < group.Rolls; i++ {
			die := rand.Intn(group.Sides) + 1
			rolled.Results[i] = die
			result.Total += group.Sign * die
		}
		result.Groups = append(result.Groups, rolled)
	}

	metrics.DiceRolls.Inc()
	return result
}

// Summary renders per-group results, one group per line, for embeds.
func (r *RollResult) Summary() string {
	lines := make([]string, 0, len(r.Groups))
	for _, group := range r.Groups {
		parts := make([]string, len(group.Results))
		for i, die := range group.Results {
			parts[i] = strconv.Itoa(die)
		}
		lines = append(lines, fmt.Sprintf("%dd%d: %s",
			group.Group.Rolls, group.Group.Sides, strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "\n")
}
