// Package cusplibrary is a sparse matrix–dense vector multiply (SpMV) engine
// for row-sorted coordinate (COO) matrices, built around a two-level
// parallel segmented reduction.
//
// 🚀 What is cusplibrary?
//
//	A thread-safe library that brings together:
//		• COO primitives: parallel-array sparse matrices + sorted builders
//		• A software device model: fixed-width cooperative groups, barriers,
//		  dual-mode accumulation (plain / atomic) and scoped texture bindings
//		• The flattened-COO SpMV kernel: per-unit segmented scans with
//		  deferred or atomic resolution of row sums that straddle unit
//		  boundaries
//		• A sequential reference kernel, doubling as the tail handler
//
// ✨ Why choose cusplibrary?
//
//   - Race-free by construction – interior rows are proven single-writer,
//     boundary rows go through a carry buffer or an atomic combine
//   - Deterministic - the deferred policy fixes the summation order
//   - Pure Go – no cgo, no assembly, portable lane simulation
//   - Extensible – per-call policies (cached reads, atomic accumulation)
//
// Under the hood, everything is organized under three subpackages:
//
//	coo/    — sorted-COO matrix type, builders and validators
//	device/ — cooperative-group execution model, accumulators, textures
//	spmv/   — the flattened SpMV kernels and the four public operations
//
// Quick sketch of the data flow:
//
//	entries ──▶ planner ──▶ level-1 warps ──▶ carries ──▶ level-2 ──▶ y
//	                   └──▶ tail handler ──────────────────────────▶ y
//
// Dive into spmv/doc.go for the full algorithm walk-through.
//
//	go get github.com/lorynj/cusplibrary
package cusplibrary
