package models

type CreateGameRequest struct {
	Title         string   `json:"title" validate:"required,min=3"`
	Description   string   `json:"description" validate:"required,min=20"`
	FilesLocation string   `json:"filesLocation" validate:"required"`
	ImageURIs     []string `json:"imageURIs" validate:"required,min=1,dive,uri"`
	PublisherID   string   `json:"publisherId" validate:"required,objectid"`
}

type CreatePublisherRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Website string `json:"website" validate:"omitempty,url"`
	Email   string `json:"email" validate:"required,email"`
}

type AddPublisherUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SignUpRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,password"`
	CheckPassword string `json:"checkPassword" validate:"omitempty,eqfield=Password"`
	Role          Role   `json:"role" validate:"required,role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetRequest struct {
	Password      string `json:"password" validate:"required,password"`
	CheckPassword string `json:"checkPassword" validate:"omitempty,eqfield=Password"`
}
