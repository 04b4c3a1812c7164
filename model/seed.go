package model

// SeedReport summarizes an administrative seeding run.
type SeedReport struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
