package datagen

import (
	"sort"
	"strconv"
)

// Transform rewrites a frame before export.
type Transform func(Frame) Frame

// ToCounter replaces the frame with two columns: the distinct values of
// the source column (sorted) and their occurrence counts.
func ToCounter(source, keyName, valueName string) Transform {
	return func(f Frame) Frame {
		keys, counts := countValues(f, source)
		text := make([]string, len(counts))
		for i, n := range counts {
			text[i] = strconv.Itoa(n)
		}
		return Frame{Columns: []Column{
			{Name: keyName, Text: keys},
			{Name: valueName, Text: text},
		}}
	}
}

// ToHistogram replaces the frame with two columns: the distinct values
// of the source column (sorted) and the percentage of occurrences each
// represents.
func ToHistogram(source, keyName, valueName string) Transform {
	return func(f Frame) Frame {
		keys, counts := countValues(f, source)
		total := 0
		for _, n := range counts {
			total += n
		}
		percents := make([]float64, len(counts))
		for i, n := range counts {
			percents[i] = float64(n) * 100 / float64(total)
		}
		return Frame{Columns: []Column{
			{Name: keyName, Text: keys},
			{Name: valueName, Nums: percents, Precision: -1},
		}}
	}
}

// countValues tallies the formatted values of the source column. Keys
// come back sorted, numerically when every key parses as a number.
func countValues(f Frame, source string) (keys []string, counts []int) {
	col, ok := f.Column(source)
	if !ok {
		return nil, nil
	}

	tally := make(map[string]int)
	for _, cell := range col.Cells() {
		tally[cell]++
	}
	keys = make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sortKeys(keys)

	counts = make([]int, len(keys))
	for i, k := range keys {
		counts[i] = tally[k]
	}
	return keys, counts
}

// sortKeys sorts numerically when all keys are numbers, lexically
// otherwise.
func sortKeys(keys []string) {
	nums := make(map[string]float64, len(keys))
	for _, k := range keys {
		v, err := strconv.ParseFloat(k, 64)
		if err != nil {
			sort.Strings(keys)
			return
		}
		nums[k] = v
	}
	sort.Slice(keys, func(i, j int) bool { return nums[keys[i]] < nums[keys[j]] })
}
