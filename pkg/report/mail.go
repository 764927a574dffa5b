package report

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/xenbackup/xenbackup/pkg/config"
)

// Send renders r as a plain-text body (one section per pool, errors
// then VM failures) and delivers it over SMTP with STARTTLS, mirroring
// send-mail.py's body assembly and PLAIN/LOGIN auth handshake.
// net/smtp is stdlib; justified in DESIGN.md as no SMTP client exists
// anywhere in the corpus.
func Send(cfg config.Mail, r *Report) error {
	body := renderBody(r)

	msg := formatMessage(cfg, r.Subject, body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)

	if err := smtp.SendMail(addr, auth, cfg.From, cfg.To, []byte(msg)); err != nil {
		return fmt.Errorf("report: sending mail: %w", err)
	}
	return nil
}

func renderBody(r *Report) string {
	var b strings.Builder
	for pool, section := range r.Body {
		fmt.Fprintf(&b, "%s\n\n", pool)
		b.WriteString("Backup errors:\n")
		for _, e := range section.Errors {
			fmt.Fprintf(&b, "\t%s\n", e)
		}
		b.WriteString("VMs export errors:\n")
		for _, v := range section.VMs {
			fmt.Fprintf(&b, "\t%s\n", v)
		}
	}
	return b.String()
}

func formatMessage(cfg config.Mail, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "From: %s\r\n", cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(cfg.To, ", "))
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	return b.String()
}
