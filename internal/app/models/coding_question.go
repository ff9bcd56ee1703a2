package models

// Difficulty is the practice-question difficulty bucket
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// CodingQuestion defines the practice-question model based on the
// 'coding_questions' table
type CodingQuestion struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Difficulty Difficulty `json:"difficulty" db:"difficulty"`
	Link       string     `json:"link" db:"link"`
}
