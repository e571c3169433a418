package model

type Worker struct {
	ID       int64  `db:"id" json:"id"`
	UserName string `db:"user_name" json:"user_name"`
}
