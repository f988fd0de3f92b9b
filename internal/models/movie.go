package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre struct {
	Name        string `json:"Name" bson:"Name"`
	Description string `json:"Description" bson:"Description"`
}

type Director struct {
	Name  string     `json:"Name" bson:"Name"`
	Bio   string     `json:"Bio" bson:"Bio"`
	Birth *time.Time `json:"Birth,omitempty" bson:"Birth,omitempty"`
	Death *time.Time `json:"Death,omitempty" bson:"Death,omitempty"`
}

// Movie is read-only through the API.
type Movie struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"Title" bson:"Title"`
	Description string             `json:"Description" bson:"Description"`
	ReleaseYear string             `json:"ReleaseYear,omitempty" bson:"ReleaseYear,omitempty"`
	Rating      string             `json:"Rating,omitempty" bson:"Rating,omitempty"`
	Genre       Genre              `json:"Genre" bson:"Genre"`
	Director    Director           `json:"Director" bson:"Director"`
	Actors      []string           `json:"Actors" bson:"Actors"`
	ImagePath   string             `json:"ImagePath,omitempty" bson:"ImagePath,omitempty"`
	Featured    bool               `json:"Featured" bson:"Featured"`
}
