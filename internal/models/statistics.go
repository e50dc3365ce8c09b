package models

// Statistics is the aggregate progress snapshot exposed to operators.
type Statistics struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Locked     int `json:"locked"`
	Remaining  int `json:"remaining"`
	Percentage int `json:"percentage"`
}
