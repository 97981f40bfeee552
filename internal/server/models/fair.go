package models

import "time"

// Fair is a competition event that groups submissions. JudgeID is the user
// allowed to edit the fair's metadata.
type Fair struct {
	ID              string    `json:"id"`
	JudgeID         string    `json:"judge_id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	About           string    `json:"about"`
	Deadline        time.Time `json:"deadline"`
	Requirements    string    `json:"requirements"`
	Prices          string    `json:"prices"`
	JudgingCriteria string    `json:"judging_criteria"`
	ImageURL        string    `json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
}
