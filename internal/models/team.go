package models

// Team is a team record as returned by the API.
// Tasks are not embedded in the wire format; they are joined in by the
// board aggregator from the per-team task endpoint.
type Team struct {
	ID   int    `json:"id_team"`
	Name string `json:"name_team"`
}
