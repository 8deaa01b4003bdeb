package email

import (
	"bytes"
	"html/template"
)

var passwordResetTpl = template.Must(template.New("password_reset").Parse(`
<p>Someone (hopefully you) asked to reset the Double Life password for {{.Email}}.</p>
<p><a href="{{.URL}}">Reset your password</a></p>
<p>If you didn't ask for this, you can ignore this email.</p>
`))

var verificationTpl = template.Must(template.New("verification").Parse(`
<p>Welcome to Double Life, {{.DisplayName}}.</p>
<p><a href="{{.URL}}">Verify your account</a> to sit down at the table.</p>
`))

func render(tpl *template.Template, data interface{}) (string, error) {
	buf := bytes.Buffer{}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// SendPasswordReset sends the password reset email
func (c *Client) SendPasswordReset(to, url string) error {
	msg, err := render(passwordResetTpl, map[string]string{"Email": to, "URL": url})
	if err != nil {
		return err
	}

	return c.SendSimple(to, "Password Reset Request", msg)
}

// SendVerification sends the account verification email
func (c *Client) SendVerification(to, displayName, url string) error {
	msg, err := render(verificationTpl, map[string]string{"DisplayName": displayName, "URL": url})
	if err != nil {
		return err
	}

	return c.SendSimple(to, "Verify your Double Life account", msg)
}
