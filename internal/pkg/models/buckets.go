package models

import "fmt"

// UnknownBucket labels prices that fall outside every price range
const UnknownBucket = "Unknown"

// PriceRange is one bar of the price histogram, covering [Min, Max)
type PriceRange struct {
	Min float64
	Max float64
}

// Label returns the bucket label, e.g. "101-200"
func (r PriceRange) Label() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

// Contains reports whether price falls inside the range
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price < r.Max
}

// PriceRanges are the fixed histogram ranges in ascending order
var PriceRanges = []PriceRange{
	{Min: 0, Max: 100},
	{Min: 101, Max: 200},
	{Min: 201, Max: 300},
	{Min: 301, Max: 400},
	{Min: 401, Max: 500},
	{Min: 501, Max: 600},
	{Min: 601, Max: 700},
	{Min: 701, Max: 800},
	{Min: 801, Max: 900},
	{Min: 901, Max: 9999},
}

// PriceBucketLabel returns the label of the range containing price,
// or UnknownBucket
func PriceBucketLabel(price float64) string {
	for _, r := range PriceRanges {
		if r.Contains(price) {
			return r.Label()
		}
	}
	return UnknownBucket
}

// FillPriceBuckets orders counted buckets by range and adds zero-count
// entries for empty ranges. An Unknown bucket is appended only when it
// has records.
func FillPriceBuckets(counted []ChartBucket) []ChartBucket {
	counts := make(map[string]int64, len(counted))
	for _, b := range counted {
		counts[b.Label] += b.Count
	}

	filled := make([]ChartBucket, 0, len(PriceRanges)+1)
	for _, r := range PriceRanges {
		label := r.Label()
		filled = append(filled, ChartBucket{Label: label, Count: counts[label]})
	}
	if n := counts[UnknownBucket]; n > 0 {
		filled = append(filled, ChartBucket{Label: UnknownBucket, Count: n})
	}
	return filled
}
