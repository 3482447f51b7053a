package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"pos_cafe/config"
	"pos_cafe/model"

	"gopkg.in/gomail.v2"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`
<h2>{{.StoreName}}</h2>
<p>{{.StoreAddress}}<br>{{.StorePhone}}</p>
<p>Order <strong>{{.OrderNumber}}</strong> — {{.PaymentMethod}}</p>
<table>
{{range .Items}}
  <tr><td>{{.Name}} x{{.Qty}}</td><td>{{.Price}}</td></tr>
{{end}}
  <tr><td>Subtotal</td><td>{{.Subtotal}}</td></tr>
  <tr><td>Tax</td><td>{{.Tax}}</td></tr>
  <tr><td><strong>Total</strong></td><td><strong>{{.Total}}</strong></td></tr>
</table>
<p><img src="cid:receipt_qr" alt="{{.OrderNumber}}"></p>
`))

// SendReceiptEmail mails an e-receipt with the order number embedded as a QR
// for reorder lookup. Runs async so the checkout response is not delayed.
func SendReceiptEmail(to string, receipt model.Receipt) {
	go func() {
		var body bytes.Buffer
		if err := receiptTemplate.Execute(&body, receipt); err != nil {
			log.Printf("receipt email render failed: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		if host == "" {
			log.Printf("receipt email skipped: SMTP not configured")
			return
		}
		port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigDefault("SMTP_FROM", "pos@localhost")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Receipt "+receipt.OrderNumber)
		m.SetBody("text/html", body.String())

		qrBytes, err := GenerateQRCode(receipt.OrderNumber, 300)
		if err == nil {
			m.Embed("receipt_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<receipt_qr>"},
				"Content-Disposition": {"inline"},
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("receipt email to %s failed: %v", to, err)
		}
	}()
}
