package application

type Counts struct {
	Total     int
	Completed int
	Pending   int
}

type Statistics struct {
	Counts
	// CompletionRate is a percentage in [0, 100]; zero when there are no
	// tasks. Rendering rounds it to one decimal.
	CompletionRate float64
}
