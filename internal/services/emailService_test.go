package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipeblog/internal/config"
	"recipeblog/internal/models"
)

func TestNewSubmissionNotifier(t *testing.T) {
	assert.IsType(t, noopNotifier{}, NewSubmissionNotifier(config.SMTPConfig{}))
	assert.IsType(t, &emailNotifier{}, NewSubmissionNotifier(config.SMTPConfig{Host: "smtp.example.com", Port: 587}))
}

func TestSubmissionBodyEscapesFields(t *testing.T) {
	body := submissionBody(&models.Recipe{Name: "<script>", Category: "Thai"})
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Thai")
}
