package handlers

// HomeData is the view model payload for the home page.
type HomeData struct {
	Tagline     string
	Collections any
	Categories  any
	Featured    any
	FAQ         any
}

