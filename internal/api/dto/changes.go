package dto

import "utube/internal/repository"

// collect 依 order 取出非空字段，order 中未知或重复的键忽略
func collect(order []string, values map[string]*string) repository.Changes {
	changes := repository.Changes{}
	seen := make(map[string]bool, len(order))
	for _, field := range order {
		v, ok := values[field]
		if !ok || v == nil || seen[field] {
			continue
		}
		seen[field] = true
		changes = changes.Set(field, *v)
	}
	return changes
}
