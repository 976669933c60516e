package domain

// MaxGallerySize caps the number of gallery images kept per project.
const MaxGallerySize = 6

type ProjectDetails struct {
	Bhk             string   `json:"bhk"`
	LandParcel      string   `json:"landParcel"`
	Units           string   `json:"units"`
	Floors          string   `json:"floors"`
	Theme           string   `json:"theme"`
	FullDescription []string `json:"fullDescription"`
}

// Project is a real-estate showcase entry. The ID is a slug-like string and
// the price is a display string ("₹2.5 Cr*"), never sorted numerically.
type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	City        string         `json:"city"`
	Price       string         `json:"price"`
	Specs       string         `json:"specs"`
	Badges      []string       `json:"badges"`
	Image       string         `json:"image"`
	Gallery     []string       `json:"gallery"`
	Amenities   []string       `json:"amenities"`
	Features    []string       `json:"features"`
	Featured    bool           `json:"featured"`
	Status      string         `json:"status"`
	Details     ProjectDetails `json:"details"`
}

var ProjectCities = []string{"Bangalore", "Chennai", "Gurugram", "Pune", "Mumbai"}

var ProjectTypes = []string{"Apartment", "Villa", "Plot", "Commercial"}

var ProjectStatuses = []string{"Ready to Move", "Under Construction", "Coming Soon"}
