package repository

import "mixto_gestao/internal/domain/entities"

const keyNamespace = "mixto_v1_"

// storageKey is the document key for a collection, e.g. mixto_v1_budgets.
func storageKey(prefix string, c entities.Collection) string {
	return prefix + keyNamespace + string(c)
}
