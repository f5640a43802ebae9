// Licensed under the MIT License. See LICENSE file in the project root for details.

package engine

import (
	"sync"

	"github.com/kianostad/byteops/internal/diag"
)

// selected memoizes the engine choice. The closure runs exactly once, on
// first use; after that the value is immutable and read without locking by
// any number of goroutines.
var selected = sync.OnceValue(func() ByteOps {
	return selectOps(NewFast, diag.Default())
})

// Select returns the engine in effect for this process. The first call
// decides between the fast and portable engines; the decision is final.
// Select never fails: worst case, every operation runs on the portable
// engine.
func Select() ByteOps {
	return selected()
}

// selectOps attempts the fast-engine constructor and falls back to the
// portable engine on any failure, reporting the cause through the inspector.
// Split from Select so tests can exercise failing constructors.
func selectOps(construct func() (ByteOps, error), sink diag.Inspector) ByteOps {
	ops, err := construct()
	if err != nil {
		report(sink, err)
		return NewPortable()
	}
	return ops
}

// report shields selection from a misbehaving inspector; a panicking sink
// must not turn an engine fallback into a caller-visible failure.
func report(sink diag.Inspector, err error) {
	defer func() {
		_ = recover()
	}()
	sink.InspectError(err)
}
