package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOTPTemplate(t *testing.T) {
	t.Parallel()

	body, err := Render("otp", OTPData{Name: "Asel", OTP: "482913"})
	require.NoError(t, err)
	assert.Contains(t, body, "Hello Asel")
	assert.Contains(t, body, "482913")
}

func TestRenderWelcomeTemplate_RoleSpecificText(t *testing.T) {
	t.Parallel()

	student, err := Render("welcome", WelcomeData{Name: "Asel", BonusPoints: 300, IsStudent: true})
	require.NoError(t, err)
	assert.Contains(t, student, "300 bonus points")
	assert.Contains(t, student, "apply for jobs")

	company, err := Render("welcome", WelcomeData{Name: "Acme HR", BonusPoints: 200, IsStudent: false})
	require.NoError(t, err)
	assert.Contains(t, company, "200 bonus points")
	assert.Contains(t, company, "post your job listings")
}

func TestRenderJobPostedTemplate(t *testing.T) {
	t.Parallel()

	body, err := Render("job_posted", JobPostedData{
		RoleName:    "Engineer",
		MinCTC:      500000,
		MaxCTC:      900000,
		JobLocation: "Remote",
		CompanyName: "Acme",
		Location:    "Almaty",
		Employees:   40,
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Engineer")
	assert.Contains(t, body, "500000")
	assert.Contains(t, body, "Acme")
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := Render("missing", nil)
	assert.Error(t, err)
}
