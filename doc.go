// Package lvroute orders the stops of a single delivery route.
//
// Given an N×N travel-cost table and a depot at index 0, lvroute returns a
// visiting order that starts at the depot, visits every location once and
// optionally returns to the depot, together with the total cost recomputed
// from the table.
//
// 🚀 What's inside?
//
//	• Nearest-neighbor construction with deterministic tie-breaks
//	• 2-opt local search, exact on asymmetric tables
//	• Held–Karp and branch-and-bound for larger stops lists, with a silent
//	  fall back to the heuristic when they are unavailable or out of budget
//	• A batch CLI with TOML config, rotating logs and Prometheus textfile metrics
//
// Layout:
//
//	matrix/        — Matrix, Dense, CostMatrix, validators, haversine provider
//	tsp/           — strategies and the Optimizer facade
//	telemetry/     — Prometheus collectors fed by tsp.Observer
//	config/        — TOML configuration and logrus/lumberjack logger setup
//	cmd/lvroute/   — JSON-in / JSON-out batch command
//
// Quick start:
//
//	cm, _ := matrix.NewCostMatrix(distances, nil)
//	opt, _ := tsp.NewOptimizer()
//	res, _ := opt.Optimize(ctx, cm, true)
//	fmt.Println(res.Tour, res.Cost)
package lvroute
