package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecipeSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_recipe_submissions_total",
		Help: "Total number of recipe submissions (successful and failed).",
	}, []string{"status"}) // status: "success" or "failed"

	ImagesUploadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_images_uploaded_total",
		Help: "Total number of recipe images written to the uploads directory.",
	})
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_searches_total",
		Help: "Total number of recipe searches.",
	})
	RandomRecipesServedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_random_recipes_served_total",
		Help: "Total number of explore-random requests.",
	})
	SubmissionEmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_submission_emails_total",
		Help: "Total number of submission confirmation e-mails.",
	}, []string{"status"})
)
