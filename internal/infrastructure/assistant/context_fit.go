package assistant

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"mecanica_gateway/internal/domain/entities"
)

const truncatedKey = "truncated"

// fitRoleContext marshals rc and, when it exceeds the budget, shrinks the
// summary structurally so the result is always valid JSON: lists are halved
// (longest first), then the largest remaining entries are dropped. The
// authorized order, when present, is always kept. The caller's map is not
// modified.
func fitRoleContext(budget *TokenBudget, rc entities.RoleContext) (string, bool, error) {
	raw, err := json.Marshal(rc)
	if err != nil {
		return "", false, fmt.Errorf("marshaling role context: %w", err)
	}
	if budget.Fits(string(raw)) {
		return string(raw), false, nil
	}

	summary := make(map[string]any, len(rc.Summary)+1)
	for k, v := range rc.Summary {
		summary[k] = v
	}
	summary[truncatedKey] = true
	rc.Summary = summary

	for {
		raw, err = json.Marshal(rc)
		if err != nil {
			return "", false, fmt.Errorf("marshaling role context: %w", err)
		}
		if budget.Fits(string(raw)) {
			return string(raw), true, nil
		}
		if halveLongestList(summary) {
			continue
		}
		if !dropLargestEntry(summary) {
			return string(raw), true, nil
		}
	}
}

func halveLongestList(summary map[string]any) bool {
	key, longest := "", 0
	for _, k := range sortedKeys(summary) {
		v := reflect.ValueOf(summary[k])
		if v.Kind() == reflect.Slice && v.Len() > longest {
			key, longest = k, v.Len()
		}
	}
	if longest == 0 {
		return false
	}
	summary[key] = reflect.ValueOf(summary[key]).Slice(0, longest/2).Interface()
	return true
}

func dropLargestEntry(summary map[string]any) bool {
	key, largest := "", -1
	for _, k := range sortedKeys(summary) {
		if k == truncatedKey {
			continue
		}
		b, _ := json.Marshal(summary[k])
		if len(b) > largest {
			key, largest = k, len(b)
		}
	}
	if largest < 0 {
		return false
	}
	delete(summary, key)
	return true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
