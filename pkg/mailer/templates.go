package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"reptileshop/internal/domain/entity"
)

var orderTemplate = template.Must(template.New("order").Parse(`<h1>{{.Heading}}</h1>
<p>Hi {{.Order.UserName}},</p>
<p>{{.Intro}}</p>
<h2>[Order {{.Order.ID}}] ({{.Order.CreatedAt.Format "2006-01-02"}})</h2>
<table>
<thead>
<tr>
<td><strong>Product</strong></td>
<td><strong>Quantity</strong></td>
<td><strong>Price</strong></td>
</tr>
</thead>
<tbody>
{{range .Order.OrderItems}}<tr>
<td>{{.Name}}</td>
<td align="center">{{.Quantity}}</td>
<td align="right">${{printf "%.2f" .Price}}</td>
</tr>
{{end}}</tbody>
<tfoot>
<tr>
<td colspan="2">Items Price:</td>
<td align="right">${{printf "%.2f" .Order.ItemsPrice}}</td>
</tr>
<tr>
<td colspan="2">Shipping Price:</td>
<td align="right">${{printf "%.2f" .Order.ShippingPrice}}</td>
</tr>
<tr>
<td colspan="2"><strong>Total Price:</strong></td>
<td align="right"><strong>${{printf "%.2f" .Order.TotalPrice}}</strong></td>
</tr>
<tr>
<td colspan="2">Payment Method:</td>
<td align="right">{{.Order.PaymentMethod}}</td>
</tr>
</tfoot>
</table>
<p>Thanks for shopping with us.</p>`))

var resetTemplate = template.Must(template.New("reset").Parse(`<p>Please click the following link to reset your password:</p>
<a href="{{.Link}}">Reset Password</a>`))

type orderTemplateData struct {
	Heading string
	Intro   string
	Order   *entity.Order
}

func renderOrder(data orderTemplateData) string {
	var buf bytes.Buffer
	if err := orderTemplate.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}

// PayOrderEmail builds the payment confirmation email for an order.
func PayOrderEmail(user *entity.User, order *entity.Order) EmailJob {
	return EmailJob{
		To:      user.Email,
		ToName:  user.Name,
		Subject: fmt.Sprintf("Payment Confirmation - Order %s", order.ID),
		Text:    "Thanks for using our service!",
		HTML: renderOrder(orderTemplateData{
			Heading: "Thanks for shopping with us!",
			Intro:   "We have finished processing your order.",
			Order:   order,
		}),
	}
}

// DeliverOrderEmail builds the delivery notification email for an order.
func DeliverOrderEmail(user *entity.User, order *entity.Order) EmailJob {
	return EmailJob{
		To:      user.Email,
		ToName:  user.Name,
		Subject: fmt.Sprintf("Order Delivered - Order %s", order.ID),
		Text:    "Your order is delivering. Thank you for shopping with us!",
		HTML: renderOrder(orderTemplateData{
			Heading: "Your order has been completed and is on its way!",
			Intro:   "We are glad to let you know that your order is on its way to you!",
			Order:   order,
		}),
	}
}

// ResetPasswordEmail builds the password reset email with the given link.
func ResetPasswordEmail(user *entity.User, link string) EmailJob {
	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		buf.Reset()
	}

	return EmailJob{
		To:      user.Email,
		ToName:  user.Name,
		Subject: "Reset Password",
		Text:    "We have sent you a reset password confirm email",
		HTML:    buf.String(),
	}
}
