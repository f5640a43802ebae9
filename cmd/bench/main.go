// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main benchmarks the fast and portable byte-operation engines
// against each other across operand sizes and representations.
//
// The small-copy threshold (6 bytes) and bulk chunk ceiling (1 MiB) baked
// into the fast engine are empirical; this tool exists to re-measure them on
// new hardware. The default sizes bracket both constants.
//
// # Usage
//
// Run all benchmarks:
//
//	go run cmd/bench/main.go
//
// Restrict iterations or sizes:
//
//	go run cmd/bench/main.go -iters 500000 -sizes 4,6,8,64,4096
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kianostad/byteops/internal/engine"
	"github.com/kianostad/byteops/internal/mem"
)

func main() {
	iters := flag.Int("iters", 1_000_000, "iterations per size")
	sizesFlag := flag.String("sizes", "4,6,8,64,1024,65536,1048576,3145728", "comma-separated operand sizes in bytes")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Println("invalid -sizes:", err)
		return
	}

	type namedOps struct {
		name string
		ops  engine.ByteOps
	}
	engines := []namedOps{{"portable", engine.NewPortable()}}
	if fast, err := engine.NewFast(); err == nil {
		engines = append(engines, namedOps{"fast", fast})
	} else {
		fmt.Println("fast engine unavailable:", err)
	}

	fmt.Println("=== Compare (heap/heap) ===")
	for _, e := range engines {
		for _, size := range sizes {
			runCompare(e.name, e.ops, size, *iters)
		}
	}

	fmt.Println("=== Copy (heap/heap) ===")
	for _, e := range engines {
		for _, size := range sizes {
			runCopy(e.name, e.ops, size, *iters)
		}
	}

	region, err := mem.AllocRegion(maxSize(sizes))
	if err != nil {
		fmt.Println("skipping native benchmarks:", err)
		return
	}
	defer region.Free()

	fmt.Println("=== Compare (native/heap) ===")
	for _, e := range engines {
		for _, size := range sizes {
			runCompareNative(e.name, e.ops, region, size, *iters)
		}
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("size must be positive: %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func maxSize(sizes []int) int {
	max := 1
	for _, s := range sizes {
		if s > max {
			max = s
		}
	}
	return max
}

func fill(b []byte) {
	for i := range b {
		b[i] = byte(i * 31)
	}
}

func report(name string, size, iters int, elapsed time.Duration) {
	perOp := elapsed / time.Duration(iters)
	mbps := float64(size) * float64(iters) / elapsed.Seconds() / (1 << 20)
	fmt.Printf("%-10s %10d B  %12v/op  %10.1f MiB/s\n", name, size, perOp, mbps)
}

func runCompare(name string, ops engine.ByteOps, size, iters int) {
	a := make([]byte, size)
	b := make([]byte, size)
	fill(a)
	fill(b)
	// Differ only in the final byte so the full length is scanned.
	b[size-1]++
	oa := mem.HeapOperand(a)
	ob := mem.HeapOperand(b)

	start := time.Now()
	for i := 0; i < iters; i++ {
		_ = ops.Compare(oa, ob)
	}
	report(name, size, iters, time.Since(start))
}

func runCompareNative(name string, ops engine.ByteOps, region *mem.Region, size, iters int) {
	if size > region.Size() {
		return
	}
	a := make([]byte, size)
	fill(a)
	buf := region.Buffer()
	buf.WriteAt(0, a)
	oa := buf.Slice(0, size)
	ob := mem.HeapOperand(a)

	start := time.Now()
	for i := 0; i < iters; i++ {
		_ = ops.Compare(oa, ob)
	}
	report(name, size, iters, time.Since(start))
}

func runCopy(name string, ops engine.ByteOps, size, iters int) {
	src := make([]byte, size)
	dst := make([]byte, size)
	fill(src)
	os := mem.HeapOperand(src)
	od := mem.HeapOperand(dst)

	start := time.Now()
	for i := 0; i < iters; i++ {
		ops.Copy(os, od, size)
	}
	report(name, size, iters, time.Since(start))
}
