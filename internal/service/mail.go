package service

import (
	"fmt"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
)

type mailContent struct {
	subject string
	body    string // body template with a %s slot for the requester name
}

func (m mailContent) render(requesterName string) string {
	if requesterName == "" {
		requesterName = "there"
	}
	return fmt.Sprintf(m.body, requesterName)
}

func hospitalResponseMail(alert *domain.SOSAlert, hospitalName string, status domain.AlertStatus) mailContent {
	note := alert.Note
	if note == "" {
		note = "-"
	}

	if status == domain.AlertAccepted {
		return mailContent{
			subject: "LifeLine SOS Update: Request Accepted",
			body: "Hello %s,\n\n" +
				"Your SOS request has been accepted by " + hospitalName + ".\n" +
				"Patient: " + alert.PatientName + "\n" +
				"Blood Type: " + string(alert.BloodType) + "\n" +
				"Reason: " + note + "\n\n" +
				"Please contact the hospital or proceed immediately.\n\n" +
				"- LifeLine",
		}
	}
	return mailContent{
		subject: "LifeLine SOS Update: Request Declined",
		body: "Hello %s,\n\n" +
			"Your SOS request was declined by " + hospitalName + ".\n" +
			"Patient: " + alert.PatientName + "\n" +
			"Blood Type: " + string(alert.BloodType) + "\n" +
			"Reason: " + note + "\n\n" +
			"Please try another hospital or resend the request.\n\n" +
			"- LifeLine",
	}
}

func donorResponseMail(alert *domain.SOSAlert, donorName string, status domain.AlertStatus) mailContent {
	note := alert.Note
	if note == "" {
		note = "-"
	}

	action := "accepted"
	subject := "LifeLine Update: Donor Accepted"
	if status == domain.AlertDeclined {
		action = "declined"
		subject = "LifeLine Update: Donor Declined"
	}

	return mailContent{
		subject: subject,
		body: "Hello %s,\n\n" +
			"A donor has " + action + " your request.\n" +
			"Donor: " + donorName + "\n" +
			"Patient: " + alert.PatientName + "\n" +
			"Blood Type: " + string(alert.BloodType) + "\n" +
			"Reason: " + note + "\n\n" +
			"- LifeLine",
	}
}
