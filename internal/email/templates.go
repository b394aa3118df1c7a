package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in HTML bodies. Kept as compiled templates so a malformed template is
// a startup failure, not a per-send one.
var templates = template.Must(template.New("otp").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h1>Welcome to Anchors Job Portal!</h1>
  <p>Hello {{.Name}},</p>
  <p>Thank you for registering with Anchors Job Portal.</p>
  <p>Your OTP for registration is: <strong>{{.OTP}}</strong></p>
  <p>Please use this OTP to complete your registration process.</p>
  <p>Best regards,<br>Anchors Job Portal Team</p>
</div>`))

func init() {
	template.Must(templates.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h1>Welcome to Anchors Job Portal!</h1>
  <p>Hello {{.Name}},</p>
  <p>You have successfully registered.</p>
  <p>Congratulations! You have received <strong>{{.BonusPoints}} bonus points</strong>.
  {{if .IsStudent}}You can use these bonus points to apply for jobs on our platform.{{else}}You can use these bonus points to post your job listings on our platform.{{end}}</p>
  <p>Best regards,<br>Anchors Job Portal Team</p>
</div>`))

	template.Must(templates.New("job_posted").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>Hello Students,</h2>
  <p>A new job has been posted:</p>
  <ul>
    <li><strong>Role:</strong> {{.RoleName}}</li>
    <li><strong>Min CTC:</strong> {{.MinCTC}}</li>
    <li><strong>Max CTC:</strong> {{.MaxCTC}}</li>
    <li><strong>Location:</strong> {{.JobLocation}}</li>
  </ul>
  <p>Apply for this job now!</p>
  <h3>Company Details:</h3>
  <ul>
    <li><strong>Company Name:</strong> {{.CompanyName}}</li>
    <li><strong>Location:</strong> {{.Location}}</li>
    <li><strong>Employees Count:</strong> {{.Employees}}</li>
  </ul>
</div>`))

	template.Must(templates.New("application").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
  <p>Hello,</p>
  <p>A student has applied for the job <strong>{{.RoleName}}</strong>.</p>
  <p>Student Details:</p>
  <ul>
    <li>Name: {{.StudentName}}</li>
    <li>Email: {{.StudentEmail}}</li>
  </ul>
  <p>Regards,<br>Anchors Job Portal Team</p>
</div>`))
}

// Render executes a named built-in template.
func Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	tmpl := templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("email template %q not found", name)
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
