// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ranking pipeline is: KeywordExpander (recommendations only),
// Aggregator (one worker per source, each scored by Scorer), then Merge.
// Comparisons resolve names directly and never go through scoring.
//
// Services are pure Go with no CGO and never touch the network or
// filesystem themselves.
package services
