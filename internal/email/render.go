package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"wanderlust/backend/internal/models"
)

// Row is one labeled line in an enquiry summary table. Absent fields never
// produce a Row, so "no value" means "no row" in the rendered document.
type Row struct {
	Label string
	Value string
}

// The admin document stamps the capture time in the travel desk's time zone.
var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

var travellerEmailTmpl = template.Must(template.New("traveller_email").Parse(`
<div style="font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background-color:#f4f4f5; padding:24px;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width:640px;margin:0 auto;background:#ffffff;border-radius:16px;overflow:hidden;box-shadow:0 18px 45px rgba(15,23,42,0.12);">
    <tr>
      <td style="background:linear-gradient(135deg,#1d4ed8,#0ea5e9);padding:24px 28px;color:#e5f2ff;">
        <h1 style="margin:0;font-size:22px;font-weight:800;color:#ffffff;">Thank you for planning your trip with {{.AppName}}</h1>
        <p style="margin:8px 0 0;font-size:13px;opacity:0.9;">We have received your enquiry and our travel expert will get back to you within one working day.</p>
      </td>
    </tr>
    <tr>
      <td style="padding:24px 28px 8px;">
        <p style="margin:0 0 12px;font-size:14px;color:#0f172a;">Hi {{.Name}},</p>
        <p style="margin:0 0 16px;font-size:13px;color:#4b5563;">Thank you for sharing your trip details with us. We'll review your preferences and share personalised options that work for your dates and budget.</p>
        <h2 style="margin:0 0 10px;font-size:14px;font-weight:700;color:#111827;text-transform:uppercase;letter-spacing:0.04em;">Your enquiry summary</h2>
        <table cellpadding="0" cellspacing="0" style="width:100%;font-size:13px;color:#111827;border-collapse:collapse;border-radius:12px;overflow:hidden;border:1px solid #e5e7eb;">
          <tbody>
            {{range .Rows}}<tr><td style="background:#f9fafb;padding:8px 12px;font-weight:600;width:32%;">{{.Label}}</td><td style="padding:8px 12px;">{{.Value}}</td></tr>
            {{end}}
          </tbody>
        </table>
        <p style="margin:16px 0 8px;font-size:13px;color:#4b5563;">You can reply to this email with any additional details such as exact dates, hotel category, or special requirements and we'll factor those into your plan.</p>
        <p style="margin:0 0 18px;font-size:13px;color:#4b5563;">Looking forward to crafting a memorable journey for you.</p>
        <p style="margin:0;font-size:13px;color:#111827;font-weight:600;">Team {{.AppName}}</p>
        <p style="margin:4px 0 0;font-size:11px;color:#6b7280;">Travel planning desk &middot; Mon&ndash;Sat, 10:00 AM &ndash; 7:00 PM IST</p>
      </td>
    </tr>
    <tr>
      <td style="padding:16px 28px 20px;background:#f9fafb;border-top:1px solid #e5e7eb;">
        <p style="margin:0;font-size:11px;color:#9ca3af;">If you received this email in error, you can ignore it. This email was sent to you because you submitted an enquiry on the {{.AppName}} website.</p>
      </td>
    </tr>
  </table>
</div>
`))

var adminEmailTmpl = template.Must(template.New("admin_email").Parse(`
<div style="font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background-color:#0b1120; padding:24px;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width:720px;margin:0 auto;background:#020617;border-radius:16px;overflow:hidden;border:1px solid #1e293b;">
    <tr>
      <td style="padding:20px 24px;border-bottom:1px solid #1f2937;background:linear-gradient(135deg,#1d4ed8,#0f172a);">
        <h1 style="margin:0;font-size:18px;font-weight:700;color:#e5f2ff;">New contact enquiry &middot; {{.AppName}}</h1>
        <p style="margin:6px 0 0;font-size:12px;color:#cbd5f5;">Captured from {{.SourcePage}}.</p>
      </td>
    </tr>
    <tr>
      <td style="padding:20px 24px 10px;">
        <h2 style="margin:0 0 10px;font-size:14px;font-weight:600;color:#e5e7eb;text-transform:uppercase;letter-spacing:0.06em;">Traveller details</h2>
        <table cellpadding="0" cellspacing="0" style="width:100%;font-size:12px;color:#e5e7eb;border-collapse:collapse;">
          <tbody>
            {{range .TravellerRows}}<tr><td style="padding:4px 8px 4px 0;width:26%;color:#9ca3af;">{{.Label}}</td><td style="padding:4px 0;">{{.Value}}</td></tr>
            {{end}}
          </tbody>
        </table>

        <h2 style="margin:18px 0 8px;font-size:14px;font-weight:600;color:#e5e7eb;text-transform:uppercase;letter-spacing:0.06em;">Trip preferences</h2>
        <table cellpadding="0" cellspacing="0" style="width:100%;font-size:12px;color:#e5e7eb;border-collapse:collapse;">
          <tbody>
            {{range .TripRows}}<tr><td style="padding:4px 8px 4px 0;width:26%;color:#9ca3af;">{{.Label}}</td><td style="padding:4px 0;">{{.Value}}</td></tr>
            {{end}}
          </tbody>
        </table>

        {{if .Notes}}<h2 style="margin:18px 0 8px;font-size:14px;font-weight:600;color:#e5e7eb;text-transform:uppercase;letter-spacing:0.06em;">Additional notes</h2><p style="margin:0;font-size:12px;color:#d1d5db;white-space:pre-line;">{{.Notes}}</p>{{end}}
      </td>
    </tr>
    <tr>
      <td style="padding:14px 24px 18px;border-top:1px solid #1e293b;background:#020617;">
        <p style="margin:0;font-size:11px;color:#6b7280;">This enquiry was captured at {{.CapturedAt}}. Reply directly to the traveller to continue the conversation.</p>
      </td>
    </tr>
  </table>
</div>
`))

type travellerEmailData struct {
	AppName string
	Name    string
	Rows    []Row
}

type adminEmailData struct {
	AppName       string
	SourcePage    string
	TravellerRows []Row
	TripRows      []Row
	Notes         string
	CapturedAt    string
}

// appendRow adds a labeled row only when the value is present.
func appendRow(rows []Row, label, value string) []Row {
	if value == "" {
		return rows
	}
	return append(rows, Row{Label: label, Value: value})
}

// packageValue combines the package name with the nights duration when both
// are present, e.g. "Golden Triangle (5 nights)".
func packageValue(enq *models.Enquiry) string {
	if enq.Package == "" {
		return ""
	}
	if enq.Nights != "" {
		return fmt.Sprintf("%s (%s)", enq.Package, enq.Nights)
	}
	return enq.Package
}

// RenderTravellerEmail renders the confirmation document sent back to the
// traveller. It is a pure function of the persisted enquiry snapshot.
func RenderTravellerEmail(enq *models.Enquiry, appName string) (string, error) {
	name := enq.Name
	if name == "" {
		name = "Traveller"
	}

	var rows []Row
	rows = appendRow(rows, "Package", packageValue(enq))
	rows = appendRow(rows, "Preferred destination", enq.Destination)
	rows = appendRow(rows, "Preferred dates", enq.Dates)
	rows = appendRow(rows, "Travellers", enq.Travellers)
	rows = appendRow(rows, "Approx. budget (per person)", enq.Budget)

	var buf bytes.Buffer
	err := travellerEmailTmpl.Execute(&buf, travellerEmailData{
		AppName: appName,
		Name:    name,
		Rows:    rows,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render traveller email: %w", err)
	}
	return buf.String(), nil
}

// RenderAdminEmail renders the internal notification document. capturedAt is
// injected rather than read from the wall clock so rendering stays testable;
// it is stamped human-readable in the Asia/Kolkata time zone.
func RenderAdminEmail(enq *models.Enquiry, appName string, capturedAt time.Time) (string, error) {
	sourcePage := enq.SourcePage
	if sourcePage == "" {
		sourcePage = "website contact form"
	}

	var travellerRows []Row
	travellerRows = appendRow(travellerRows, "Name", enq.Name)
	travellerRows = appendRow(travellerRows, "Email", enq.Email)
	travellerRows = appendRow(travellerRows, "Mobile", enq.Mobile)

	var tripRows []Row
	tripRows = appendRow(tripRows, "Package", packageValue(enq))
	tripRows = appendRow(tripRows, "Preferred destination", enq.Destination)
	tripRows = appendRow(tripRows, "Preferred dates", enq.Dates)
	tripRows = appendRow(tripRows, "Travellers", enq.Travellers)
	tripRows = appendRow(tripRows, "Approx. budget", enq.Budget)
	tripRows = appendRow(tripRows, "Trip type", enq.TripType)

	var buf bytes.Buffer
	err := adminEmailTmpl.Execute(&buf, adminEmailData{
		AppName:       appName,
		SourcePage:    sourcePage,
		TravellerRows: travellerRows,
		TripRows:      tripRows,
		Notes:         enq.Notes,
		CapturedAt:    capturedAt.In(istLocation).Format("2/1/2006, 3:04:05 PM"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render admin email: %w", err)
	}
	return buf.String(), nil
}
