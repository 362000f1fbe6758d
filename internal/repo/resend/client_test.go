package resend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/partshub/catalog-service/internal/models"
)

func TestContactNotificationEscapesUserInput(t *testing.T) {
	t.Parallel()
	msg := models.ContactMessage{
		Name:        `Eve <script>alert(1)</script>`,
		Email:       "eve@example.com",
		Phone:       `"555"`,
		Subject:     "Brake pads",
		Message:     `<img src=x onerror=alert(1)>`,
		InquiryType: models.InquiryParts,
	}

	req := contactNotification("noreply@partshub.example", "support@partshub.example", msg)

	assert.Equal(t, []string{"support@partshub.example"}, req.To)
	assert.Equal(t, "eve@example.com", req.ReplyTo)
	assert.NotContains(t, req.HTML, "<script>")
	assert.NotContains(t, req.HTML, "<img")
	assert.Contains(t, req.HTML, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, req.HTML, "&lt;img src=x onerror=alert(1)&gt;")
}

func TestContactAutoReplyEscapesUserInput(t *testing.T) {
	t.Parallel()
	msg := models.ContactMessage{
		Name:    "<b>Bob</b>",
		Email:   "bob@example.com",
		Subject: `"quoted" & <tagged>`,
	}

	req := contactAutoReply("noreply@partshub.example", msg)

	assert.Equal(t, []string{"bob@example.com"}, req.To)
	assert.NotContains(t, req.HTML, "<b>Bob</b>")
	assert.Contains(t, req.HTML, "&lt;b&gt;Bob&lt;/b&gt;")
	assert.Contains(t, req.HTML, "&amp; &lt;tagged&gt;")
}
