package resend

import (
	"context"
	"fmt"
	"html"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-resty/resty/v2"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/pkg/util"
)

const apiURL = "https://api.resend.com/emails"

// Client sends transactional mail through Resend. With no API key
// configured every send is a logged no-op so local setups work without
// credentials.
type Client interface {
	SendContactNotification(ctx context.Context, msg models.ContactMessage) error
	SendContactAutoReply(ctx context.Context, msg models.ContactMessage) error
}

type client struct {
	http  *resty.Client
	from  string
	admin string
}

func NewClient(cfg *config.Config) Client {
	httpClient := util.NewRestyClient()
	if cfg.Email.ResendAPIKey != "" {
		httpClient.SetAuthToken(cfg.Email.ResendAPIKey)
	} else {
		httpClient = nil
	}
	return &client{
		http:  httpClient,
		from:  cfg.Email.FromAddress,
		admin: cfg.Email.AdminAddress,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (c *client) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	return c.send(ctx, contactNotification(c.from, c.admin, msg))
}

func (c *client) SendContactAutoReply(ctx context.Context, msg models.ContactMessage) error {
	return c.send(ctx, contactAutoReply(c.from, msg))
}

// message content is user supplied, escape it before it lands in HTML
func contactNotification(from, admin string, msg models.ContactMessage) sendRequest {
	return sendRequest{
		From:    from,
		To:      []string{admin},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New contact form submission - %s", msg.Subject),
		HTML: fmt.Sprintf(
			"<p><b>%s</b> (%s) wrote:</p><p>%s</p><p>Inquiry type: %s<br>Phone: %s</p>",
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Message),
			html.EscapeString(string(msg.InquiryType)),
			html.EscapeString(msg.Phone),
		),
	}
}

func contactAutoReply(from string, msg models.ContactMessage) sendRequest {
	return sendRequest{
		From:    from,
		To:      []string{msg.Email},
		Subject: "We received your message",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for reaching out about \"%s\". Our team will get back to you within one business day.</p>",
			html.EscapeString(msg.Name), html.EscapeString(msg.Subject),
		),
	}
}

func (c *client) send(ctx context.Context, req sendRequest) error {
	if c.http == nil {
		log.Infof(ctx, "Email sending disabled, skipping %q to %v", req.Subject, req.To)
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(apiURL)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("send email: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
