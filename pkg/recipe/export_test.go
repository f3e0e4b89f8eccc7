package recipe

import "sync"

// ResetDefinition lets tests observe the definition notice again.
func ResetDefinition() { definition = sync.Once{} }
