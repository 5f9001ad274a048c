package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	Name        string
	EventTitle  string
	EventDate   string
	Location    string
	TicketType  string
	Quantity    int
	TotalPaid   string
	BookingCode string
}

// SendBookingConfirmationEmail sends the confirmation email with an embedded
// QR of the booking code. Runs in a goroutine; failures are logged and dropped.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		tmplPath := "templates/booking_confirmed.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking Confirmed: "+data.EventTitle)
		m.SetBody("text/html", body.String())

		qrBytes, err := GenerateQRCode(data.BookingCode, 400)
		if err == nil {
			m.Embed("booking_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<booking_qr>"},
				"Content-Disposition": {"inline"},
			}))
		} else {
			log.Printf("failed to generate booking QR: %v", err)
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
