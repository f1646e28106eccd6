// Package models defines the records persisted in users.db and exchanged
// with the GUI front-end.
package models

// User is the public identity record. The stored password hash is kept out
// of this struct on purpose: it never crosses the bridge and is handled only
// inside the repositories and the auth service.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
