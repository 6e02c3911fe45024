package notify

import "fmt"

// Notification types recorded on in-app notifications.
const (
	TypeAdoption = "adoption"
	TypeRescue   = "rescue"
	TypeReport   = "report"
	TypeSystem   = "system"
)

// Message builders for the lifecycle transitions. Wording follows the
// platform's email copy.

func AdoptionConfirmationRequested(petName string) (title, message string) {
	return "Adoption Confirmation Required",
		fmt.Sprintf("Please confirm your adoption request for %s within 7 days.", petName)
}

func AdoptionStatusChanged(petName, status string) (title, message string) {
	var detail string
	switch status {
	case "pending":
		detail = "Your adoption request is being reviewed by our team."
	case "confirmed":
		detail = "Great news! Your adoption has been confirmed. We will contact you soon to schedule a meeting."
	case "completed":
		detail = fmt.Sprintf("Congratulations! You have successfully adopted %s. Thank you for giving a pet a loving home!", petName)
	case "cancelled":
		detail = "Your adoption request has been cancelled."
	default:
		detail = "Your adoption status has been updated."
	}
	return fmt.Sprintf("Adoption Status: %s", status),
		fmt.Sprintf("Your adoption request for %s is now %s. %s", petName, status, detail)
}

func AdoptionExpired(petName string) (title, message string) {
	return "Adoption Request Expired",
		fmt.Sprintf("Your adoption request for %s was cancelled because the confirmation window of 7 days lapsed. The pet is available for adoption again.", petName)
}

func RescueStatusChanged(rescueTitle, status string) (title, message string) {
	var detail string
	switch status {
	case "in_progress":
		detail = "The rescue team is on their way to the location."
	case "completed":
		detail = "The rescue mission has been completed successfully."
	case "cancelled":
		detail = "The rescue mission has been cancelled."
	default:
		detail = "The rescue status has been updated."
	}
	return fmt.Sprintf("Rescue Status: %s", status),
		fmt.Sprintf("Rescue mission %q is now %s. %s", rescueTitle, status, detail)
}

func RescueCancelled(rescueTitle, reason string) (title, message string) {
	msg := fmt.Sprintf("Rescue mission %q has been cancelled.", rescueTitle)
	if reason != "" {
		msg += " Reason: " + reason
	}
	return "Rescue Mission Cancelled", msg
}

func ReportResolved(reportTitle string) (title, message string) {
	return "Your Report Has Been Resolved",
		fmt.Sprintf("The rescue team resolved your report %q. Thank you for reporting!", reportTitle)
}

func ReportReturnedToPool(reportTitle string) (title, message string) {
	return "Your Report Needs a New Rescue Team",
		fmt.Sprintf("The rescue effort for your report %q could not be completed. The report is open again and awaits a new team.", reportTitle)
}

func RescueAssignment(location string) (title, message string) {
	msg := "You claimed a report and a rescue mission was started."
	if location != "" {
		msg += " Location: " + location
	}
	return "Rescue Mission Assigned", msg
}
