package radar

import "fmt"

// Version is the SDK release version embedded in the User-Agent header.
const Version = "2.0.0"

// userAgentName identifies this SDK to the RADAR service.
const userAgentName = "RADAR-Go-Client"

// userAgent renders the identifying header the service requires of every
// client: "RADAR-Go-Client/<version> (<contact URL>)".
func userAgent(contactURL string) string {
	return fmt.Sprintf("%s/%s (%s)", userAgentName, Version, contactURL)
}
