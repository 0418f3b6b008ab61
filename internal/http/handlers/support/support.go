package support

import (
	"net/http"
	"swapcloset/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

// Section is a titled block of static help content.
type Section struct {
	Title string   `json:"title"`
	Items []Item   `json:"items,omitempty"`
	Body  []string `json:"body,omitempty"`
}

type Item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Intro    string    `json:"intro"`
	Sections []Section `json:"sections"`
}

// Support content is static by design: the pages change with releases,
// not with data, so they ship compiled into the binary.
var pages = map[string]Page{
	"help-center": {
		Slug:  "help-center",
		Title: "Help Center",
		Intro: "Quick answers to the most common questions about getting started, managing your account, and keeping your experience secure.",
		Sections: []Section{
			{
				Title: "Getting Started",
				Items: []Item{
					{
						Question: "How do I create an account?",
						Answer:   "Choose Register from the top navigation, complete the sign-up form, and confirm your email. You can start listing and browsing right after verification.",
					},
					{
						Question: "What can I do with SwapCloset?",
						Answer:   "Catalogue your wardrobe, list pre-loved pieces, favorite items you want, and rate sellers after a completed swap.",
					},
				},
			},
			{
				Title: "Account & Security",
				Items: []Item{
					{
						Question: "How do I keep my account secure?",
						Answer:   "Use a strong password and never share your login credentials. We notify you by email about unusual activity.",
					},
					{
						Question: "Can I recover my password?",
						Answer:   "Yes. Use the Forgot password link on the login page and follow the emailed instructions. Reset links expire after an hour.",
					},
				},
			},
		},
	},
	"contact": {
		Slug:  "contact",
		Title: "Contact Support",
		Intro: "Send us a message and the support team will get back to you within two business days.",
		Sections: []Section{
			{
				Title: "Reach us",
				Body: []string{
					"Email: support@swapcloset.ph",
					"Hours: Monday to Friday, 9:00 to 18:00 PHT",
				},
			},
		},
	},
	"safety-guidelines": {
		Slug:  "safety-guidelines",
		Title: "Safety Guidelines",
		Intro: "Meet-ups and payments happen between members. Follow these guidelines to keep every swap safe.",
		Sections: []Section{
			{
				Title: "Meeting in person",
				Body: []string{
					"Meet in busy public places and bring a friend when you can.",
					"Inspect items before paying and agree on the price in advance.",
				},
			},
			{
				Title: "Payments",
				Body: []string{
					"Never send payment outside the agreed channel.",
					"Report members who ask for deposits before a meet-up.",
				},
			},
		},
	},
	"community-guidelines": {
		Slug:  "community-guidelines",
		Title: "Community Guidelines",
		Intro: "SwapCloset is a community built on trust. These rules keep it that way.",
		Sections: []Section{
			{
				Title: "Listings",
				Body: []string{
					"List only items you own and describe their condition honestly.",
					"Counterfeit goods are not allowed and are removed without notice.",
				},
			},
			{
				Title: "Conduct",
				Body: []string{
					"Be respectful in messages and ratings.",
					"Rate sellers fairly based on the actual transaction.",
				},
			},
		},
	},
}

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "page")
	page, ok := pages[slug]
	if !ok {
		response.RenderNotFound(rw, "page not found")
		return
	}
	response.Render(rw, page, http.StatusOK)
}
