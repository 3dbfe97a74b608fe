package models

type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Name         string `json:"username" bson:"name"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
}
