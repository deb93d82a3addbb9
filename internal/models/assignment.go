package models

import "time"

type Assignment struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	Points       float64   `json:"points"`
	ChallengePts float64   `json:"challenge_pts"`
	CreatedAt    time.Time `json:"created_at"`
}
