// Package pulsex provides higher-level combinators over pulse streams:
// resolved merging, gated and sampled selection, switching between streams,
// initial-value-aware folds, and small structural helpers.
//
// The combinators in this package are built purely from the pulse engine
// primitives. Their contracts are precise about two things the primitives
// leave to the caller: what happens when two streams update in the same
// round, and how a derived stream's initial value relates to its first real
// update.
//
//   - FairMerge turns a same-round collision into exactly one resolved
//     event instead of two deliveries.
//   - SampleWhen, KeepThen, SwitchWhen and SwitchSample select between
//     streams under a boolean control, with a defined answer for the round
//     in which the control flips.
//   - FoldFrom, FoldState and FoldStateFrom generalize Fold with seeds
//     derived from the input's initial value and with hidden state.
//   - Zip/Unzip, RunBuffer and DelayRound are structural helpers.
package pulsex
