package entity

type Genre string

const (
	GenreAction         Genre = "Action"
	GenreComedy         Genre = "Comedy"
	GenreDrama          Genre = "Drama"
	GenreHorror         Genre = "Horror"
	GenreScienceFiction Genre = "Science Fiction"
	GenreRomance        Genre = "Romance"
)

// Genres lists the selectable genres in display order.
var Genres = []Genre{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreHorror,
	GenreScienceFiction,
	GenreRomance,
}

func (g Genre) Valid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

// Movie is a validated catalog entry. The json tags are the persisted slot format.
type Movie struct {
	ID     string `json:"id"`
	Title  string `json:"titulo"`
	Genre  Genre  `json:"genero"`
	Year   int    `json:"anio"`
	Review string `json:"resena"`
}
