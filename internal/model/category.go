package model

// QuestionCategory is the single container all generated questions of a
// course land in. Exactly one category is bound to a course context.
type QuestionCategory struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Name     string `json:"name"`
}
