// SPDX-License-Identifier: MIT

// Package colexnet builds and analyses weighted colexification networks:
// concepts joined by edges that count how many translations, across how many
// languages, express both concepts with one word.
//
// Layout:
//
//	core/        WeightedEdge, the concept Graph, induced focus subgraphs
//	bfs/         breadth-first search with hop cutoff and cancellation
//	walk/        lazy random walks, seeded streams, visitation distributions
//	longestpath/ reachable-concept-count proxy for the longest path
//	export/      focus-concept node/edge listings and exporters
//	results/     JSON/YAML persistence of analysis results
//	ingest/      CSV records and threshold-aware graph construction
//	builder/     deterministic topologies for fixtures and demos
//	config/      settings from defaults, files, dotenv and environment
//	analysis/    batch runner with the log-and-skip policy
//	cmd/colexnet command line front end
//
// The library packages neither log nor panic at runtime; errors are package
// sentinels wrapped with context and matched with errors.Is.
package colexnet
