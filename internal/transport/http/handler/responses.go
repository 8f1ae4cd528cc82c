package handler

import (
	"fmt"
	"time"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// JSON field names follow the public API contract (capitalized keys),
// which predates this service.

type userResponse struct {
	ID        string   `json:"ID"`
	Username  string   `json:"Username"`
	Email     string   `json:"Email"`
	Birthday  *string  `json:"Birthday,omitempty"`
	Favorites []string `json:"Favorites"`
}

// toUserResponse shapes a user record for the client. The password
// digest never appears in a response.
func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Favorites: u.Favorites,
	}
	if resp.Favorites == nil {
		resp.Favorites = []string{}
	}
	if u.Birthday != nil {
		s := u.Birthday.Format(dateLayout)
		resp.Birthday = &s
	}
	return resp
}

type genreResponse struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type directorResponse struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio"`
	Birth *int   `json:"Birth,omitempty"`
}

type movieResponse struct {
	ID          string           `json:"ID"`
	Title       string           `json:"Title"`
	Description string           `json:"Description"`
	Genre       genreResponse    `json:"Genre"`
	Director    directorResponse `json:"Director"`
	ImagePath   string           `json:"ImagePath"`
	Featured    bool             `json:"Featured"`
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       genreResponse{Name: m.Genre.Name, Description: m.Genre.Description},
		Director:    directorResponse{Name: m.Director.Name, Bio: m.Director.Bio, Birth: m.Director.Birth},
		ImagePath:   m.ImagePath,
		Featured:    m.Featured,
	}
}

func toMovieResponses(movies []*domain.Movie) []movieResponse {
	items := make([]movieResponse, len(movies))
	for i, m := range movies {
		items[i] = toMovieResponse(m)
	}
	return items
}

const dateLayout = "2006-01-02"

// parseBirthday accepts a date-only or RFC 3339 value.
func parseBirthday(raw string) (*time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid birthday %q, want YYYY-MM-DD", raw)
	}
	return &t, nil
}

// identityFromContext recovers the principal stored by the auth middleware.
func identityFromContext(c *gin.Context) auth.Identity {
	return auth.Identity{
		UserID:   c.GetString("userID"),
		Username: c.GetString("username"),
	}
}
