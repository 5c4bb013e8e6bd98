package filter

import (
	"fmt"
	"strings"
)

// ParseSet parses filter definitions, one per line. Empty lines are
// skipped; predicates accumulate per column in encounter order.
func ParseSet(definitions string) (*Set, error) {
	set := &Set{predicates: make(map[string][]Predicate)}

	for _, line := range strings.Split(definitions, "\n") {
		if line == "" {
			continue
		}

		column, pred, err := parseLine(line)
		if err != nil {
			return nil, err
		}

		if _, ok := set.predicates[column]; !ok {
			set.columns = append(set.columns, column)
		}

		set.predicates[column] = append(set.predicates[column], pred)
	}

	return set, nil
}

// parseLine splits one definition into column, operator, and value.
// Operator tokens are tested in priority order and the line is split on
// the first occurrence of the first token found; a value containing an
// operator-like substring therefore follows whichever operator is
// highest-priority and present. Surrounding whitespace is trimmed from
// both column and value.
func parseLine(line string) (string, Predicate, error) {
	for _, op := range operators {
		if !strings.Contains(line, string(op.token)) {
			continue
		}

		column, value, _ := strings.Cut(line, string(op.token))

		return strings.TrimSpace(column), Predicate{Op: op.token, Value: strings.TrimSpace(value)}, nil
	}

	return "", Predicate{}, fmt.Errorf("%w: %q contains no comparison operator", ErrInvalidFilter, line)
}
