package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recipe struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Email       string             `json:"email" bson:"email"`
	Ingredients []string           `json:"ingredients" bson:"ingredients"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
}

// RecipeSubmission is the form payload of a new recipe. Image is nil when no
// file was uploaded.
type RecipeSubmission struct {
	Name        string
	Description string
	Email       string
	Ingredients []string
	Category    string
	Image       *Upload
}
