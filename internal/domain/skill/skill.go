package skill

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryData          Category = "data"
	CategoryLanguage      Category = "language"
	CategoryVision        Category = "vision"
	CategoryAudio         Category = "audio"
	CategoryCode          Category = "code"
	CategorySearch        Category = "search"
	CategoryAutomation    Category = "automation"
	CategoryCommunication Category = "communication"
	CategoryOther         Category = "other"
)

var categories = map[Category]bool{
	CategoryData:          true,
	CategoryLanguage:      true,
	CategoryVision:        true,
	CategoryAudio:         true,
	CategoryCode:          true,
	CategorySearch:        true,
	CategoryAutomation:    true,
	CategoryCommunication: true,
	CategoryOther:         true,
}

// NormalizeCategory maps free-text input onto the closed enumeration.
// Unrecognized values fall back to CategoryOther.
func NormalizeCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if categories[c] {
		return c
	}
	return CategoryOther
}

const DefaultRating = 5.0

// Skill is a formal catalog entry, distinct from the loose tags on an agent
// record. OwnerAgentID is a weak reference: the owner may deregister or never
// have registered at all.
type Skill struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"skill_name"`
	Category    Category               `json:"category"`
	Description string                 `json:"description,omitempty"`
	OwnerID     string                 `json:"owner_agent_id"`
	Endpoint    string                 `json:"endpoint,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
	Rating      float64                `json:"rating"`
	TimesShared int                    `json:"times_shared"`
	CreatedAt   time.Time              `json:"created_at"`
}

func New(ownerID, name, category, description, endpoint string, parameters map[string]interface{}) Skill {
	return Skill{
		Name:        name,
		Category:    NormalizeCategory(category),
		Description: description,
		OwnerID:     ownerID,
		Endpoint:    endpoint,
		Parameters:  parameters,
		Rating:      DefaultRating,
		CreatedAt:   time.Now().UTC(),
	}
}

type ListFilters struct {
	Category *Category
	Search   *string
}
