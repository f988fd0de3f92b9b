package main

import (
	"time"

	"github.com/daniswhoiam/movie-api/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// demoCatalog backs STORAGE=memory runs.
func demoCatalog() []models.Movie {
	nolan := models.Director{
		Name:  "Christopher Nolan",
		Bio:   "British-American filmmaker known for non-linear storytelling.",
		Birth: date(1970, time.July, 30),
	}
	return []models.Movie{
		{
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing is given the inverse task of planting an idea.",
			ReleaseYear: "2010",
			Genre:       models.Genre{Name: "Thriller", Description: "Suspense and tension drive the plot."},
			Director:    nolan,
			Actors:      []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
			Featured:    true,
		},
		{
			Title:       "The Prestige",
			Description: "Two rival magicians in Victorian London obsess over creating the ultimate illusion.",
			ReleaseYear: "2006",
			Genre:       models.Genre{Name: "Drama", Description: "Character-driven stories with emotional stakes."},
			Director:    nolan,
			Actors:      []string{"Hugh Jackman", "Christian Bale"},
		},
		{
			Title:       "Psycho",
			Description: "A secretary on the run checks into a remote motel run by a troubled young man.",
			ReleaseYear: "1960",
			Genre:       models.Genre{Name: "Horror", Description: "Stories meant to frighten and unsettle."},
			Director: models.Director{
				Name:  "Alfred Hitchcock",
				Bio:   "English director and master of suspense.",
				Birth: date(1899, time.August, 13),
				Death: date(1980, time.April, 29),
			},
			Actors: []string{"Anthony Perkins", "Janet Leigh"},
		},
	}
}
