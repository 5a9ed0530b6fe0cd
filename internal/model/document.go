package model

import "time"

// CourseDocument is one piece of course material offered as generation
// source. Only the label and a content-fetch URL are stored; the content
// itself lives wherever the hosting platform keeps files.
type CourseDocument struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
