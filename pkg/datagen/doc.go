// Package datagen generates synthetic tabular datasets and summary
// statistics for plotting experiments.
//
// A dataset is a [Frame] of named columns. Each column comes from a
// [Series]: a normal distribution (gonum's distuv with a seedable
// source), random strings from a letter population, or random
// three-letter acronyms. A [DataGenerator] produces all series with an
// equal sample count, optionally pipes the frame through a [Transform]
// (occurrence counter or percentage histogram), and writes CSV.
//
// A [StatisticsGenerator] reduces a frame to a single row of named
// aggregates (count, mean, standard deviation, min, max, quantiles).
// The [Runner] dispatches an ordered list of generators to their target
// files; each statistics generator consumes the output of the most
// recent data generator before it.
package datagen
