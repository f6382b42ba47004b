package models

// RankedAmount is one row of a revenue style report
type RankedAmount struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// RankedCount is one row of a counting report
type RankedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Supplier groups the ingredients bought from one supplier
type Supplier struct {
	Name        string   `json:"supplier"`
	Ingredients []string `json:"ingredients"`
}

// Weekdays holds the labels of the weekly sales buckets, Sunday first
var Weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeeklySales is total revenue bucketed by day of week (0=Sunday..6=Saturday)
type WeeklySales [7]float64

// Labels returns the bucket labels in order
func (WeeklySales) Labels() []string {
	return Weekdays[:]
}

// Values returns the bucket totals as a slice
func (w WeeklySales) Values() []float64 {
	return w[:]
}

// QueryResult is the verbatim output of a raw query
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}
