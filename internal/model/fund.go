package model

// Fund represents a fund from the database. Code is the external,
// user-facing fund identifier; ID is the internal primary key.
type Fund struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
