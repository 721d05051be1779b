package models

import (
	"slices"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Game struct {
	ID            string   `json:"_id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Description   string   `json:"description" db:"description"`
	FilesLocation string   `json:"filesLocation" db:"files_location"`
	ImageURIs     []string `json:"imageURIs" db:"image_uris"`
	PublisherID   string   `json:"publisherId" db:"publisher_id"`
}

// Publisher owns both membership lists. Users holds the ids of the users
// allowed to act on behalf of the publisher and is never sent to clients.
type Publisher struct {
	ID      string   `json:"_id" db:"id"`
	Name    string   `json:"name" db:"name"`
	Website string   `json:"website" db:"website"`
	Email   string   `json:"email" db:"email"`
	Users   []string `json:"-" db:"users"`
	Games   []string `json:"games" db:"games"`
}

func (p *Publisher) HasMember(userID string) bool {
	return slices.Contains(p.Users, userID)
}

func (p *Publisher) OwnsGame(gameID string) bool {
	return slices.Contains(p.Games, gameID)
}

// NewID returns a fresh 24-hex-char document id.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// GameUpdate is a sparse set of requested changes; nil or empty means
// the field was not requested.
type GameUpdate struct {
	Title         *string  `json:"title" validate:"omitempty,min=3"`
	Description   *string  `json:"description" validate:"omitempty,min=20"`
	FilesLocation *string  `json:"filesLocation"`
	ImageURIs     []string `json:"imageURIs" validate:"omitempty,dive,uri"`
}

func (u GameUpdate) Empty() bool {
	return isBlank(u.Title) && isBlank(u.Description) && isBlank(u.FilesLocation) && len(u.ImageURIs) == 0
}

type PublisherUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=2"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Website *string `json:"website" validate:"omitempty,url"`
}

func (u PublisherUpdate) Empty() bool {
	return isBlank(u.Name) && isBlank(u.Email) && isBlank(u.Website)
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
