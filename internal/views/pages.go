package views

import "recipeblog/internal/models"

const titlePrefix = "Cooking Blog - "

func Title(page string) string {
	return titlePrefix + page
}

// SubmitCategories are the choices offered on the submission form.
var SubmitCategories = []string{"Thai", "American", "Chineese", "Mexican", "Indian", "Spanish"}

type IndexPage struct {
	Title      string
	Categories []models.Category
	Food       models.Food
}

// CategoriesPage lists categories, or the recipes of one category when
// CategoryName is set.
type CategoriesPage struct {
	Title        string
	Categories   []models.Category
	CategoryName string
	CategoryByID []models.Recipe
}

type RecipePage struct {
	Title  string
	Recipe *models.Recipe
}

type SearchPage struct {
	Title      string
	SearchTerm string
	Recipes    []models.Recipe
}

type ExploreLatestPage struct {
	Title   string
	Recipes []models.Recipe
}

type ExploreRandomPage struct {
	Title  string
	Recipe *models.Recipe
}

type SubmitRecipePage struct {
	Title      string
	InfoErrors []string
	InfoSubmit []string
	Categories []string
}

type ContactPage struct {
	Title string
}
