package analytics

// NoDataLabel is the month label of the placeholder bucket emitted for
// empty trend series.
const NoDataLabel = "No Data"

// TrendSeries shapes a monthly series for a bar/line chart. An empty
// series becomes a single zero placeholder bucket so the chart still has
// an axis to draw; callers deciding whether real data exists must check
// the series before adapting, not after.
func TrendSeries(buckets []MonthBucket) []MonthBucket {
	if len(buckets) == 0 {
		return []MonthBucket{{Month: NoDataLabel, Value: 0}}
	}
	out := make([]MonthBucket, len(buckets))
	copy(out, buckets)
	return out
}

// Pie is a label distribution shaped for a pie chart. Unlike a bar
// chart, a pie cannot render "zero" honestly, so an empty distribution
// is reported through HasData instead of a synthetic slice.
type Pie struct {
	Slices  []LabelSum `json:"slices"`
	HasData bool       `json:"has_data"`
}

// PieData wraps a label distribution with its has-data flag.
func PieData(sums []LabelSum) Pie {
	out := make([]LabelSum, len(sums))
	copy(out, sums)
	return Pie{Slices: out, HasData: len(out) > 0}
}
