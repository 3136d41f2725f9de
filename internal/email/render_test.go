package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/backend/internal/models"
)

const testAppName = "Wanderlust India"

func fullEnquiry() *models.Enquiry {
	return &models.Enquiry{
		Name:        "Asha",
		Email:       "asha@example.com",
		Mobile:      "+91 98765 43210",
		Dates:       "12-20 Nov",
		Travellers:  "2 adults",
		Budget:      "50000",
		Destination: "Goa",
		TripType:    "Beach",
		Notes:       "Vegetarian meals preferred",
		Package:     "Goa Getaway",
		Nights:      "5 nights",
		SourcePage:  "packages/goa",
	}
}

func TestRenderTravellerEmail_AllRowsPresent(t *testing.T) {
	html, err := RenderTravellerEmail(fullEnquiry(), testAppName)
	require.NoError(t, err)

	for _, label := range []string{"Package", "Preferred destination", "Preferred dates", "Travellers", "Approx. budget (per person)"} {
		assert.Equal(t, 1, strings.Count(html, ">"+label+"<"), "expected exactly one %q row", label)
	}
	assert.Contains(t, html, "Hi Asha,")
	assert.Contains(t, html, "Goa Getaway (5 nights)")
	assert.Contains(t, html, "Thank you for planning your trip with Wanderlust India")
}

func TestRenderTravellerEmail_AbsentFieldsProduceNoRows(t *testing.T) {
	enq := &models.Enquiry{Name: "Asha", Email: "asha@example.com"}
	html, err := RenderTravellerEmail(enq, testAppName)
	require.NoError(t, err)

	for _, label := range []string{"Package", "Preferred destination", "Preferred dates", "Travellers", "Approx. budget"} {
		assert.NotContains(t, html, ">"+label+"<", "did not expect a %q row", label)
	}
}

func TestRenderTravellerEmail_Scenario(t *testing.T) {
	enq := &models.Enquiry{
		Name:        "Asha",
		Email:       "asha@example.com",
		Destination: "Goa",
		Budget:      "50000",
	}
	html, err := RenderTravellerEmail(enq, testAppName)
	require.NoError(t, err)

	assert.Contains(t, html, "Preferred destination")
	assert.Contains(t, html, ">Goa<")
	assert.Contains(t, html, ">50000<")
	assert.NotContains(t, html, ">Mobile<")
	assert.NotContains(t, html, ">Package<")
}

func TestRenderTravellerEmail_PackageWithoutNights(t *testing.T) {
	enq := &models.Enquiry{Name: "Asha", Email: "asha@example.com", Package: "Goa Getaway"}
	html, err := RenderTravellerEmail(enq, testAppName)
	require.NoError(t, err)

	assert.Contains(t, html, ">Goa Getaway<")
	assert.NotContains(t, html, "Goa Getaway (")
}

func TestRenderAdminEmail_AllRowsPresent(t *testing.T) {
	html, err := RenderAdminEmail(fullEnquiry(), testAppName, time.Now())
	require.NoError(t, err)

	for _, label := range []string{"Name", "Email", "Mobile", "Package", "Preferred destination", "Preferred dates", "Travellers", "Approx. budget", "Trip type"} {
		assert.Equal(t, 1, strings.Count(html, ">"+label+"<"), "expected exactly one %q row", label)
	}
	assert.Contains(t, html, "Captured from packages/goa.")
	assert.Contains(t, html, "Additional notes")
	assert.Contains(t, html, "Vegetarian meals preferred")
}

func TestRenderAdminEmail_AbsentFieldsProduceNoRows(t *testing.T) {
	enq := &models.Enquiry{Name: "Asha", Email: "asha@example.com"}
	html, err := RenderAdminEmail(enq, testAppName, time.Now())
	require.NoError(t, err)

	for _, label := range []string{"Mobile", "Package", "Preferred destination", "Preferred dates", "Travellers", "Approx. budget", "Trip type"} {
		assert.NotContains(t, html, ">"+label+"<", "did not expect a %q row", label)
	}
	assert.NotContains(t, html, "Additional notes")
	assert.Contains(t, html, "Captured from website contact form.")
}

func TestRenderAdminEmail_NotesPreserveLineBreaks(t *testing.T) {
	enq := &models.Enquiry{
		Name:  "Asha",
		Email: "asha@example.com",
		Notes: "First line\nSecond line",
	}
	html, err := RenderAdminEmail(enq, testAppName, time.Now())
	require.NoError(t, err)

	assert.Contains(t, html, "First line\nSecond line")
	assert.Contains(t, html, "white-space:pre-line")
}

func TestRenderAdminEmail_EscapesFieldValues(t *testing.T) {
	enq := &models.Enquiry{
		Name:        "Asha",
		Email:       "asha@example.com",
		Destination: `<script>alert("x")</script>`,
		Notes:       "<b>bold</b>",
	}
	html, err := RenderAdminEmail(enq, testAppName, time.Now())
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderAdminEmail_CapturedTimestampInIST(t *testing.T) {
	// 10:30 UTC is 16:00 IST (+05:30)
	capturedAt := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	html, err := RenderAdminEmail(fullEnquiry(), testAppName, capturedAt)
	require.NoError(t, err)

	assert.Contains(t, html, "This enquiry was captured at 15/1/2026, 4:00:00 PM.")
}
