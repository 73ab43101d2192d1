package models

// Food groups the recipe lists shown on the homepage.
type Food struct {
	Latest   []Recipe
	Thai     []Recipe
	American []Recipe
	Chineese []Recipe
}

type Homepage struct {
	Categories []Category
	Food       Food
}
