package domain

// Outcome records the verdict for one executed test case
type Outcome struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Failed bool   `json:"failed"`
}
