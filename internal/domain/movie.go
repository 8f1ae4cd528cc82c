package domain

type Genre struct {
	Name        string
	Description string
}

type Director struct {
	Name  string
	Bio   string
	Birth *int // birth year, unknown for some directors
}

type Movie struct {
	ID          string
	Title       string
	Description string
	Genre       Genre
	Director    Director
	ImagePath   string
	Featured    bool
}
