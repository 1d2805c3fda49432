package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EventStatusData feeds the status-change notification template.
type EventStatusData struct {
	CustomerName string
	EventName    string
	Status       string
	StartDate    string
	VenueName    string
}

var statusTemplate = template.Must(template.New("status").Parse(`
<p>Hello {{.CustomerName}},</p>
<p>Your event <b>{{.EventName}}</b> ({{.StartDate}}{{if .VenueName}} at {{.VenueName}}{{end}})
has been updated to status: <b>{{.Status}}</b>.</p>
<p>EventNa Management</p>`))

// SendEventStatusEmail notifies the owning customer about a status change
// (async so the request is not delayed).
func SendEventStatusEmail(to string, data EventStatusData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		if host == "" || to == "" {
			return
		}

		var body bytes.Buffer
		if err := statusTemplate.Execute(&body, data); err != nil {
			log.Printf("render status email: %v", err)
			return
		}

		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if port == 0 {
			port = 587
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Event "+data.EventName+" is now "+data.Status)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("send status email: %v", err)
		}
	}()
}
