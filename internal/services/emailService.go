package services

import (
	"fmt"
	"html"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"recipeblog/internal/config"
	"recipeblog/internal/metrics"
	"recipeblog/internal/models"
)

// SubmissionNotifier tells a cook their recipe was published.
type SubmissionNotifier interface {
	RecipeSubmitted(recipe *models.Recipe) error
}

type emailNotifier struct {
	from string
	cfg  config.SMTPConfig
}

// NewSubmissionNotifier returns an e-mail notifier when SMTP is configured
// and a no-op notifier otherwise.
func NewSubmissionNotifier(cfg config.SMTPConfig) SubmissionNotifier {
	if !cfg.Enabled() {
		return noopNotifier{}
	}
	return &emailNotifier{from: cfg.From, cfg: cfg}
}

func (e *emailNotifier) RecipeSubmitted(recipe *models.Recipe) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", recipe.Email)
	m.SetHeader("Subject", "Your recipe has been added")
	m.SetBody("text/html", submissionBody(recipe))

	d := gomail.NewDialer(e.cfg.Host, e.cfg.Port, e.cfg.Username, e.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		metrics.SubmissionEmailsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to send submission e-mail: %w", err)
	}

	metrics.SubmissionEmailsTotal.WithLabelValues("success").Inc()
	log.Info().Str("recipe_id", recipe.ID.Hex()).Msg("Submission e-mail sent")
	return nil
}

func submissionBody(recipe *models.Recipe) string {
	return fmt.Sprintf("<p>Thanks for sharing <b>%s</b> in %s on Cooking Blog.</p>",
		html.EscapeString(recipe.Name), html.EscapeString(recipe.Category))
}

type noopNotifier struct{}

func (noopNotifier) RecipeSubmitted(*models.Recipe) error { return nil }
