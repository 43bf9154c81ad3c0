package wirebuf

import "golang.org/x/exp/constraints"

// zeros backs padding writes; reads of it must never observe a non-zero byte.
var zeros [8]byte

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
