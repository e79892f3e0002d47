package mcq

import "time"

// SampleBatch returns a fixed single-question batch used to demonstrate the
// quiz flow without a generation service.
func SampleBatch() *Batch {
	q := Question{
		ID:     IDFor(0),
		Number: 1,
		Text:   "What is the main product of photosynthesis?",
		Options: []Option{
			{Letter: 'a', Text: "Oxygen", Label: "a) Oxygen"},
			{Letter: 'b', Text: "Carbon dioxide", Label: "b) Carbon dioxide"},
			{Letter: 'c', Text: "Glucose", Label: "c) Glucose"},
			{Letter: 'd', Text: "Water", Label: "d) Water"},
		},
		CorrectIndex: 2,
		Explanation: "While oxygen is released as a byproduct, the main product of photosynthesis is glucose, " +
			"which plants use for energy and growth.",
	}
	return &Batch{
		ID:        "sample",
		Request:   Request{Topic: "Photosynthesis", Difficulty: DifficultyEasy, Count: 1},
		Questions: []Question{q},
		Model:     "sample",
		CreatedAt: time.Time{},
	}
}
