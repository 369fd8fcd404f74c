package response

import (
	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
)

type MovieResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
	Review string `json:"review"`
}

// FormState is everything the page needs to render after a request.
type FormState struct {
	Draft     request.MovieDraft `json:"draft"`
	Errors    []string           `json:"errors"`
	Submitted bool               `json:"submitted"`
	Movies    []MovieResponse    `json:"movies"`
}

// Helper converters
func MovieToResponse(movie entity.Movie) MovieResponse {
	return MovieResponse{
		ID:     movie.ID,
		Title:  movie.Title,
		Genre:  string(movie.Genre),
		Year:   movie.Year,
		Review: movie.Review,
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
