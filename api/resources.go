package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Resource is one emergency or self-help resource.
type Resource struct {
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
}

// EmergencyResources is the fixed resource list served to the client.
type EmergencyResources struct {
	CrisisHotlines  []Resource `json:"crisis_hotlines"`
	OnlineResources []Resource `json:"online_resources"`
	Emergency       Resource   `json:"emergency"`
}

var emergencyResources = EmergencyResources{
	CrisisHotlines: []Resource{
		{
			Name:        "Crisis Text Line",
			Contact:     "Text HOME to 741741",
			Description: "24/7 crisis support via text message",
			Website:     "https://www.crisistextline.org/",
		},
		{
			Name:        "National Suicide Prevention Lifeline",
			Contact:     "Call or text 988",
			Description: "24/7 free and confidential support",
			Website:     "https://suicidepreventionlifeline.org/",
		},
		{
			Name:        "SAMHSA National Helpline",
			Contact:     "1-800-662-HELP (4357)",
			Description: "Treatment referral and information service",
			Website:     "https://www.samhsa.gov/find-help/national-helpline",
		},
	},
	OnlineResources: []Resource{
		{
			Name:        "7 Cups",
			Description: "Free online emotional support",
			Website:     "https://www.7cups.com/",
		},
		{
			Name:        "MindShift",
			Description: "Anxiety management app",
			Website:     "https://www.anxietycanada.com/resources/mindshift-app/",
		},
		{
			Name:        "Headspace",
			Description: "Meditation and mindfulness",
			Website:     "https://www.headspace.com/",
		},
	},
	Emergency: Resource{
		Name:        "Emergency Services",
		Contact:     "911",
		Description: "For immediate life-threatening emergencies",
	},
}

// GetEmergencyResources returns the fixed emergency resource list.
// GET /api/emergency-resources
func (h *Handler) GetEmergencyResources(c echo.Context) error {
	return c.JSON(http.StatusOK, emergencyResources)
}
