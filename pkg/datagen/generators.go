package datagen

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uppercase is the letter population for acronym generation.
const Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newSource creates a random source. A zero seed gives a time-based one.
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// NormalSeries generates samples from a normal distribution.
//
// Unset parameters are drawn at random: mu uniformly from
// [-MaxMuFactor, MaxMuFactor] and sigma uniformly from [0, 1). A
// standard bell curve centered on zero needs an explicit Mu of 0.
type NormalSeries struct {
	ColumnName  string
	Mu          *float64
	Sigma       *float64
	MaxMuFactor float64 // zero means 1
	Precision   int     // formatting digits; negative for shortest form
	Seed        uint64  // zero seeds from the clock
}

// Name returns the column name.
func (s *NormalSeries) Name() string { return s.ColumnName }

// Generate draws n samples.
func (s *NormalSeries) Generate(n int) Column {
	src := newSource(s.Seed)
	rng := rand.New(src)

	mu := 0.0
	if s.Mu != nil {
		mu = *s.Mu
	} else {
		factor := s.MaxMuFactor
		if factor == 0 {
			factor = 1
		}
		mu = (2*rng.Float64() - 1) * factor
	}
	sigma := rng.Float64()
	if s.Sigma != nil {
		sigma = *s.Sigma
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	nums := make([]float64, n)
	for i := range nums {
		nums[i] = dist.Rand()
	}
	return Column{Name: s.ColumnName, Nums: nums, Precision: s.Precision}
}

// StringSeries generates random strings drawn from a letter population.
type StringSeries struct {
	ColumnName   string
	Length       int
	Population   string
	RandomLength bool // lengths vary in [1, Length) instead of being fixed
	Seed         uint64
}

// Name returns the column name.
func (s *StringSeries) Name() string { return s.ColumnName }

// Generate draws n random strings.
func (s *StringSeries) Generate(n int) Column {
	rng := rand.New(newSource(s.Seed))
	text := make([]string, n)
	for i := range text {
		text[i] = randomString(rng, s.Length, s.Population, s.RandomLength)
	}
	return Column{Name: s.ColumnName, Text: text}
}

// TLASeries generates random three-letter acronyms.
type TLASeries struct {
	ColumnName string
	Seed       uint64
}

// Name returns the column name.
func (s *TLASeries) Name() string { return s.ColumnName }

// Generate draws n acronyms.
func (s *TLASeries) Generate(n int) Column {
	rng := rand.New(newSource(s.Seed))
	text := make([]string, n)
	for i := range text {
		text[i] = randomTLA(rng)
	}
	return Column{Name: s.ColumnName, Text: text}
}

func randomString(rng *rand.Rand, length int, population string, randomLength bool) string {
	if randomLength && length > 1 {
		length = 1 + rng.Intn(length-1)
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = population[rng.Intn(len(population))]
	}
	return string(b)
}

func randomTLA(rng *rand.Rand) string {
	return randomString(rng, 3, Uppercase, false)
}
