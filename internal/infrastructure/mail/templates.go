package mail

import (
	"bytes"
	"html/template"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Welcome to our store, {{.Name}}!</h1>
  <p>Thanks for creating an account. You can now track orders, save
  products to your wishlist and check out faster.</p>
  <p>Happy shopping!</p>
</div>`))

var orderConfirmationTemplate = template.Must(template.New("order-confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Order Confirmation</h1>
  <p>Hi {{.CustomerName}},</p>
  <p>Thank you for your order! We've received your order
  <strong>{{.OrderNumber}}</strong> and will start processing it shortly.</p>
  <p>Order total: <strong>{{.Total}}</strong></p>
  <p>You'll receive another email when your order ships.</p>
</div>`))

var passwordResetTemplate = template.Must(template.New("password-reset").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Reset your password</h1>
  <p>We received a request to reset your password. Click the link below
  to choose a new one. The link expires in 1 hour.</p>
  <p><a href="{{.ResetLink}}" style="display: inline-block; padding: 12px 24px; background: #111; color: #fff; text-decoration: none; border-radius: 4px;">Reset Password</a></p>
  <p>If you didn't request this, you can safely ignore this email.</p>
</div>`))

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
