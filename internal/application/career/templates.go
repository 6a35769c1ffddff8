package career

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

const wrapperTmpl = `<div style="background:#f9fafb;padding:40px 0;font-family:'Segoe UI',Arial,sans-serif;">
  <table align="center" width="600" style="background:#ffffff;border-radius:12px;overflow:hidden;box-shadow:0 6px 20px rgba(0,0,0,0.08);">
    <tr>
      <td style="background:#ff7f00;padding:16px 32px;text-align:center;">
        <h2 style="color:#fff;margin:0;font-size:22px;letter-spacing:0.5px;">{{.Brand}}</h2>
      </td>
    </tr>
    <tr>
      <td style="padding:32px 40px;">{{.Content}}</td>
    </tr>
    <tr>
      <td style="background:#f3f4f6;padding:16px 32px;text-align:center;color:#6b7280;font-size:13px;">
        &copy; {{.Year}} {{.Brand}}. All rights reserved.<br/>
        <span>849 Fairmount Ave, Suite 200-T8, Towson, MD 21286</span>
      </td>
    </tr>
  </table>
</div>`

const adminBodyTmpl = `<h3 style="color:#111827;margin-bottom:12px;">New Career Application Received</h3>
<p style="color:#374151;font-size:15px;">A new applicant has submitted their career form on the website. Details are below:</p>
<table style="width:100%;margin-top:16px;border-collapse:collapse;">
  <tr><td style="padding:8px 0;color:#111827;"><strong>Full Name:</strong></td><td>{{.FullName}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>Email:</strong></td><td>{{.Email}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>Phone:</strong></td><td>{{.Phone}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>City:</strong></td><td>{{.City}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>State:</strong></td><td>{{.State}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>Zip Code:</strong></td><td>{{.Zip}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>Credentialing Status:</strong></td><td>{{.Credential}}</td></tr>
  <tr><td style="padding:8px 0;color:#111827;"><strong>Interested In:</strong></td><td>{{.Interested}}</td></tr>
</table>
<p style="margin-top:24px;font-size:14px;color:#6b7280;">Submitted on: <strong>{{.SubmittedAt}}</strong></p>`

const applicantBodyTmpl = `<h3 style="color:#111827;margin-bottom:12px;">Thank You for Applying, {{.FullName}}!</h3>
<p style="color:#374151;font-size:15px;line-height:1.6;">
  We&rsquo;ve received your application at <strong>{{.Brand}}</strong>.
  Our HR team will review your details and contact you soon if you&rsquo;re shortlisted.
</p>
<div style="background:#fff4e6;border-left:4px solid #ff7f00;padding:12px 16px;margin-top:20px;border-radius:8px;">
  <p style="margin:0;color:#7c2d12;font-size:14px;">
    Please ensure your contact details are correct. You may also reply to this email for follow-up queries.
  </p>
</div>
<p style="margin-top:24px;color:#6b7280;font-size:14px;">Warm regards,<br/><strong>{{.Brand}} HR Team</strong></p>`

var (
	wrapperT   = template.Must(template.New("wrapper").Parse(wrapperTmpl))
	adminT     = template.Must(template.New("admin").Parse(adminBodyTmpl))
	applicantT = template.Must(template.New("applicant").Parse(applicantBodyTmpl))
)

func renderWrapped(brand string, content string, now time.Time) (string, error) {
	var buf strings.Builder
	err := wrapperT.Execute(&buf, struct {
		Brand   string
		Content template.HTML
		Year    int
	}{Brand: brand, Content: template.HTML(content), Year: now.Year()})
	if err != nil {
		return "", fmt.Errorf("render wrapper template: %w", err)
	}
	return buf.String(), nil
}

func renderAdminHTML(brand string, sub domain.Submission, now time.Time) (string, error) {
	var buf strings.Builder
	err := adminT.Execute(&buf, struct {
		FullName, Email, Phone, City, State, Zip, Credential, Interested string
		SubmittedAt                                                     string
	}{
		FullName:    sub.FullName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		City:        orDash(sub.City),
		State:       orDash(sub.State),
		Zip:         orDash(sub.Zip),
		Credential:  sub.Credential,
		Interested:  sub.Interested,
		SubmittedAt: now.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return "", fmt.Errorf("render admin template: %w", err)
	}
	return renderWrapped(brand, buf.String(), now)
}

func renderApplicantHTML(brand string, sub domain.Submission, now time.Time) (string, error) {
	var buf strings.Builder
	err := applicantT.Execute(&buf, struct {
		FullName string
		Brand    string
	}{FullName: sub.FullName, Brand: brand})
	if err != nil {
		return "", fmt.Errorf("render applicant template: %w", err)
	}
	return renderWrapped(brand, buf.String(), now)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
