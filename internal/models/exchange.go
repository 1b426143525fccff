// ABOUTME: Exchange represents one query/answer pair within a session
// ABOUTME: Sessions retain a bounded ordered sequence of exchanges
package models

import "time"

// Exchange is a single completed question and answer in a conversation
// session.
type Exchange struct {
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
