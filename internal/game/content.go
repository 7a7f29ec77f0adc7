package game

import "github.com/iburimskiy/vybe/internal/view"

type navLink struct {
	label string
	link  string
}

var navLinks = []navLink{
	{"Home", "home"},
	{"Services", "section:services"},
	{"Team", "section:team"},
	{"Contact", "section:contact"},
	{"About", "about"},
}

type card struct {
	title   string
	summary string
	detail  []string
}

var serviceCards = []card{
	{
		title:   "Sound Design",
		summary: "Textures that move people.",
		detail:  []string{"Custom sonic identities,", "intros and ambient beds", "mixed for any screen."},
	},
	{
		title:   "Visual Direction",
		summary: "Motion with a pulse.",
		detail:  []string{"Reactive backdrops, type", "and color systems built", "around your music."},
	},
	{
		title:   "Live Sets",
		summary: "Rooms that remember you.",
		detail:  []string{"Stage visuals and audio", "synced in real time for", "clubs and festivals."},
	},
}

type member struct {
	name string
	role string
	bio  []string
}

var teamMembers = []member{
	{"Noa Vale", "Founder / Producer", []string{"Ten years behind the desk,", "still chasing the first chord."}},
	{"Iris Kade", "Creative Director", []string{"Turns moods into frames", "and frames into stories."}},
	{"Theo Marr", "Engineer", []string{"Keeps the signal clean", "and the lights on time."}},
}

func homePage(navHeight float64) *view.Page {
	return view.NewPage(navHeight,
		view.Section{ID: "hero", Title: "VYBE", Height: 560, Lines: []string{
			"A studio for sound and light.",
			"Scroll, or use the links above.",
		}},
		view.Section{ID: "services", Title: "Services", Height: 420},
		view.Section{ID: "team", Title: "Team", Height: 380},
		view.Section{ID: "contact", Title: "Contact", Height: 360, Lines: []string{
			"Tell us about your project.",
			"Press C to open the contact form.",
		}},
	)
}

func aboutPage(navHeight float64) *view.Page {
	return view.NewPage(navHeight,
		view.Section{ID: "story", Title: "Our Story", Height: 520, Lines: []string{
			"VYBE started as a bedroom project and a borrowed synth.",
			"Today we score launches, shows and everything in between.",
			"The goal never changed: make people feel something.",
		}},
		view.Section{ID: "values", Title: "What We Believe", Height: 480, Lines: []string{
			"Listen first.",
			"Ship the feeling, not the feature list.",
			"Leave every room louder than we found it.",
		}},
	)
}
