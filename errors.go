package superposition

import "errors"

/*
ErrEmptyState reports an operation that needs probability mass to work
with: normalising a memory whose total mass is zero, or collapsing a
memory that holds no hypotheses at all. Callers unwrap it with
errors.Is.
*/
var ErrEmptyState = errors.New("empty superposition state")
