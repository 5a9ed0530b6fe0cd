package model

import "time"

// Generator is one configured quiz-generator instance attached to a course.
type Generator struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	ModuleID  int64     `json:"module_id"`
	Name      string    `json:"name"`
	Intro     string    `json:"intro"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateGeneratorRequest is the payload for creating a generator instance.
type CreateGeneratorRequest struct {
	CourseID int64  `json:"course_id" binding:"required,min=1"`
	ModuleID int64  `json:"module_id" binding:"min=0"`
	Name     string `json:"name" binding:"required,min=1"`
	Intro    string `json:"intro" binding:"omitempty"`
}

// UpdateGeneratorRequest is the payload for updating a generator instance.
type UpdateGeneratorRequest struct {
	Name  string `json:"name" binding:"required,min=1"`
	Intro string `json:"intro" binding:"omitempty"`
}
