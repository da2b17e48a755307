// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a short text entry owned by exactly one user.
// Deleting the owner removes all of its posts (ON DELETE CASCADE).
type Post struct {
	PostID      int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
