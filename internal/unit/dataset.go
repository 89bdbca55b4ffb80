package unit

// Record is one entry of the remote event list. Only Name is required; any
// other fields the source returns are ignored.
type Record struct {
	Name string `json:"Name"`
}

// DataSet is an ordered sequence of records produced by one fetch. A fetch
// always yields a new DataSet; it is never modified after it is returned.
type DataSet []Record

// Names returns the record names in order.
func (ds DataSet) Names() []string {
	names := make([]string, len(ds))
	for i, r := range ds {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of records.
func (ds DataSet) Len() int { return len(ds) }
