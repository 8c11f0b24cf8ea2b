package destinations

// Destination is one travel-destination record. The capitalized JSON keys
// are the catalog's wire and storage format. Id is unique across the
// collection.
type Destination struct {
	ID          int64  `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Location    string `json:"Location"`
}
